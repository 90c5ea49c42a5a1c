package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Credentials supplies the bearer token for authenticated requests and the
// hook used to re-authenticate after a 401. Tokens are read just-in-time for
// every request, never cached across requests, so a refresh that lands
// mid-flight is picked up by the next attempt.
type Credentials interface {
	// AccessToken returns the current access token, or "" when logged out.
	AccessToken() string

	// Reauthenticate attempts to restore a valid access token (typically a
	// coalesced refresh). It is invoked at most once per request.
	Reauthenticate(ctx context.Context) error
}

// Client is the REST client for the exam-prep backend.
type Client struct {
	http  *resty.Client
	creds Credentials
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: hc}
}

// SetCredentials installs the credential source. Called once at wiring time;
// a nil source leaves the client anonymous.
func (c *Client) SetCredentials(creds Credentials) {
	c.creds = creds
}

// request builds a fresh request. The access token is resolved at call time.
func (c *Client) request(ctx context.Context, out any, authed bool) *resty.Request {
	// Decode responses as JSON even when the backend omits or mislabels
	// the Content-Type header.
	r := c.http.R().SetContext(ctx).ForceContentType("application/json")
	if out != nil {
		r.SetResult(out)
	}
	if authed && c.creds != nil {
		if tok := c.creds.AccessToken(); tok != "" {
			r.SetAuthToken(tok)
		}
	}
	return r
}

// do executes send, mapping transport failures and error responses to the
// client error taxonomy. For authenticated requests a 401 triggers exactly
// one re-authentication followed by one retry; a second failure is returned
// as-is (bounded retry).
func (c *Client) do(ctx context.Context, op string, authed bool, send func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send()
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}

	if authed && c.creds != nil && resp.StatusCode() == http.StatusUnauthorized {
		if rerr := c.creds.Reauthenticate(ctx); rerr != nil {
			return nil, errFromResponse(resp)
		}
		resp, err = send()
		if err != nil {
			return nil, &RequestError{Op: op, Err: err}
		}
	}

	if resp.IsError() {
		return nil, errFromResponse(resp)
	}
	return resp, nil
}

// errFromResponse maps a non-2xx response to a typed error.
func errFromResponse(resp *resty.Response) error {
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		body = nil
	}
	return body.toError(resp.StatusCode())
}

// Login exchanges a username/password pair for tokens.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var out TokenPair
	_, err := c.do(ctx, "obtain tokens", false, func() (*resty.Response, error) {
		return c.request(ctx, &out, false).
			SetBody(map[string]string{"username": username, "password": password}).
			Post(EndpointTokenObtain)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns tokens plus the new profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	_, err := c.do(ctx, "register", false, func() (*resty.Response, error) {
		return c.request(ctx, &out, false).
			SetBody(req).
			Post(EndpointRegister)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken exchanges the refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	_, err := c.do(ctx, "refresh token", false, func() (*resty.Response, error) {
		return c.request(ctx, &out, false).
			SetBody(map[string]string{"refresh": refresh}).
			Post(EndpointTokenRefresh)
	})
	if err != nil {
		return "", err
	}
	return out.Access, nil
}

// FetchUser returns the profile of the authenticated user.
func (c *Client) FetchUser(ctx context.Context) (*User, error) {
	var out User
	_, err := c.do(ctx, "fetch user", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointUserDetail)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Topics returns the topic catalog with subtopics and exam weights.
func (c *Client) Topics(ctx context.Context) ([]Topic, error) {
	var out []Topic
	_, err := c.do(ctx, "fetch topics", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointTopics)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Questions returns the ordered practice question set for a selector.
// An empty result is a valid outcome, not an error.
func (c *Client) Questions(ctx context.Context, sel QuestionSelector) ([]Question, error) {
	var out []Question
	_, err := c.do(ctx, "fetch questions", true, func() (*resty.Response, error) {
		r := c.request(ctx, &out, true)
		if sel.Topic != "" {
			r.SetQueryParam("topic", sel.Topic)
		}
		if sel.Subtopic != "" {
			r.SetQueryParam("subtopic", sel.Subtopic)
		}
		return r.Get(EndpointQuestions)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExamQuestions returns the fixed-size mixed-topic exam set.
func (c *Client) ExamQuestions(ctx context.Context) ([]Question, error) {
	var out struct {
		Questions []Question `json:"questions"`
	}
	_, err := c.do(ctx, "fetch exam questions", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointExamQuestions)
	})
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// ExamStats returns historical exam attempt statistics.
func (c *Client) ExamStats(ctx context.Context) (*ExamStats, error) {
	var out ExamStats
	_, err := c.do(ctx, "fetch exam stats", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointExamStats)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckAnswer grades a single practice answer.
func (c *Client) CheckAnswer(ctx context.Context, questionID, answer string) (*CheckResult, error) {
	var out CheckResult
	path := fmt.Sprintf(EndpointCheckAnswer, questionID)
	_, err := c.do(ctx, "check answer", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).
			SetBody(map[string]string{"answer": answer}).
			Post(path)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitExam submits the full answer set for grading.
func (c *Client) SubmitExam(ctx context.Context, sub ExamSubmission) (*ExamResults, error) {
	var out ExamResults
	_, err := c.do(ctx, "submit exam", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).
			SetBody(sub).
			Post(EndpointExamSubmit)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordAttempt posts one attempt to the progress tracker. Callers treat
// failures as non-blocking: they are logged, never surfaced.
func (c *Client) RecordAttempt(ctx context.Context, rec AttemptRecord) error {
	_, err := c.do(ctx, "record attempt", true, func() (*resty.Response, error) {
		return c.request(ctx, nil, true).
			SetBody(rec).
			Post(EndpointAttempts)
	})
	return err
}

// ProgressSummary returns the aggregate progress stats.
func (c *Client) ProgressSummary(ctx context.Context) (*ProgressSummary, error) {
	var out ProgressSummary
	_, err := c.do(ctx, "fetch progress summary", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointProgressSummary)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TopicProgress returns per-topic accuracy rows.
func (c *Client) TopicProgress(ctx context.Context) ([]TopicProgress, error) {
	var out []TopicProgress
	_, err := c.do(ctx, "fetch topic progress", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointProgressTopics)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubtopicProgress returns per-subtopic accuracy rows, optionally scoped
// to one topic.
func (c *Client) SubtopicProgress(ctx context.Context, topic string) ([]SubtopicProgress, error) {
	var out []SubtopicProgress
	_, err := c.do(ctx, "fetch subtopic progress", true, func() (*resty.Response, error) {
		r := c.request(ctx, &out, true)
		if topic != "" {
			r.SetQueryParam("topic", topic)
		}
		return r.Get(EndpointProgressSubtopics)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WeakAreas returns the backend-computed weak subtopics.
func (c *Client) WeakAreas(ctx context.Context) ([]WeakArea, error) {
	var out []WeakArea
	_, err := c.do(ctx, "fetch weak areas", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointWeakAreas)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecentActivity returns the recent-activity feed.
func (c *Client) RecentActivity(ctx context.Context) ([]Activity, error) {
	var out []Activity
	_, err := c.do(ctx, "fetch recent activity", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointRecentActivity)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// KeyConcepts returns the key-concept outline.
func (c *Client) KeyConcepts(ctx context.Context) ([]KeyConcept, error) {
	var out []KeyConcept
	_, err := c.do(ctx, "fetch key concepts", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).Get(EndpointKeyConcepts)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// explainResponse is the wire shape of the concept-explanation endpoint.
type explainResponse struct {
	Success     bool   `json:"success"`
	Error       string `json:"error"`
	Concept     string `json:"concept"`
	Subtopic    string `json:"subtopic"`
	MainTopic   string `json:"main_topic"`
	Explanation struct {
		SimpleExplanation string   `json:"simple_explanation"`
		KeyPoints         []string `json:"key_points"`
		MemoryTricks      []string `json:"memory_tricks"`
		RealWorldExample  string   `json:"real_world_example"`
		ExamTip           string   `json:"exam_tip"`
	} `json:"explanation"`
}

// ExplainConcept asks the backend's AI service to explain one key concept.
func (c *Client) ExplainConcept(ctx context.Context, topic, subtopic, concept string) (*ConceptExplanation, error) {
	var out explainResponse
	_, err := c.do(ctx, "explain concept", true, func() (*resty.Response, error) {
		return c.request(ctx, &out, true).
			SetBody(map[string]string{
				"main_topic":  topic,
				"subtopic":    subtopic,
				"key_concept": concept,
			}).
			Post(EndpointExplainConcept)
	})
	if err != nil {
		return nil, err
	}
	if !out.Success {
		detail := out.Error
		if detail == "" {
			detail = "explanation service returned no result"
		}
		return nil, &APIError{Status: 200, Detail: detail}
	}

	return &ConceptExplanation{
		Concept:           out.Concept,
		Subtopic:          out.Subtopic,
		Topic:             out.MainTopic,
		SimpleExplanation: out.Explanation.SimpleExplanation,
		KeyPoints:         out.Explanation.KeyPoints,
		MemoryTricks:      out.Explanation.MemoryTricks,
		RealWorldExample:  out.Explanation.RealWorldExample,
		ExamTip:           out.Explanation.ExamTip,
	}, nil
}
