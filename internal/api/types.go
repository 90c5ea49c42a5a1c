package api

// User is the profile snapshot returned by the user detail endpoint.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	DateJoined string `json:"date_joined,omitempty"`
}

// TokenPair is the credential pair returned by the token obtain endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is returned by registration: tokens plus the created profile.
type AuthResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    *User  `json:"user"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Topic is one entry of the exam topic catalog.
type Topic struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Percentage string     `json:"percentage"`
	Subtopics  []Subtopic `json:"subtopics,omitempty"`
}

// Subtopic is a drill-down unit within a topic.
type Subtopic struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Question is a four-choice question. Correct-choice and explanation metadata
// are withheld by the server until the answer is checked (practice) or the
// exam is submitted.
type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"question"`
	Choices  []string `json:"choices"`
	Topic    string   `json:"topic,omitempty"`
	Subtopic string   `json:"subtopic,omitempty"`
}

// QuestionSelector describes which question set to fetch.
type QuestionSelector struct {
	Topic    string
	Subtopic string
}

// CheckResult is the grading response for a single practice answer.
type CheckResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// ExamAnswer is one recorded answer in an exam submission.
type ExamAnswer struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	TimeSpent  int    `json:"time_spent"`
}

// ExamSubmission is the full exam submission payload.
type ExamSubmission struct {
	Answers   []ExamAnswer `json:"answers"`
	TotalTime int          `json:"total_time"`
}

// QuestionResult is the per-question outcome returned after exam grading.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Prompt        string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// ExamResults is the graded summary of a submitted exam.
type ExamResults struct {
	ScorePercentage  float64          `json:"score_percentage"`
	Passed           bool             `json:"passed"`
	PassingScore     float64          `json:"passing_score"`
	CorrectAnswers   int              `json:"correct_answers"`
	IncorrectAnswers int              `json:"incorrect_answers"`
	TotalQuestions   int              `json:"total_questions"`
	TotalTime        int              `json:"total_time"`
	Results          []QuestionResult `json:"results"`
}

// ExamStats summarizes the user's historical exam attempts.
type ExamStats struct {
	TotalAttempts int     `json:"total_attempts"`
	BestScore     float64 `json:"best_score"`
	AverageScore  float64 `json:"average_score"`
	PassedCount   int     `json:"passed_count"`
}

// AttemptRecord is the fire-and-forget progress-tracking payload.
type AttemptRecord struct {
	QuestionID       string `json:"question_id"`
	UserAnswer       string `json:"user_answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// ProgressSummary is the aggregate progress stats for the current user.
type ProgressSummary struct {
	TotalQuestionsAttempted int     `json:"total_questions_attempted"`
	TotalCorrect            int     `json:"total_correct"`
	TotalIncorrect          int     `json:"total_incorrect"`
	OverallAccuracy         float64 `json:"overall_accuracy"`
	QuestionsLast7Days      int     `json:"questions_last_7_days"`
	CurrentStreakDays       int     `json:"current_streak_days"`
	LongestStreakDays       int     `json:"longest_streak_days"`
	LastPracticeDate        string  `json:"last_practice_date"`
}

// TopicProgress is per-topic accuracy for the progress dashboard.
type TopicProgress struct {
	Topic        string  `json:"topic"`
	TopicDisplay string  `json:"topic_display"`
	Attempted    int     `json:"attempted"`
	Correct      int     `json:"correct"`
	Accuracy     float64 `json:"accuracy"`
}

// SubtopicProgress is per-subtopic accuracy, optionally scoped to a topic.
type SubtopicProgress struct {
	Topic           string  `json:"topic"`
	Subtopic        string  `json:"subtopic"`
	SubtopicDisplay string  `json:"subtopic_display"`
	Attempted       int     `json:"attempted"`
	Correct         int     `json:"correct"`
	Accuracy        float64 `json:"accuracy"`
}

// WeakArea is a subtopic the backend flags as below the accuracy bar.
// Computed server-side; the client only displays it.
type WeakArea struct {
	Topic           string  `json:"topic"`
	Subtopic        string  `json:"subtopic"`
	SubtopicDisplay string  `json:"subtopic_display"`
	Accuracy        float64 `json:"accuracy"`
	Attempts        int     `json:"attempts"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	Date      string `json:"date"`
	Questions int    `json:"questions"`
	Correct   int    `json:"correct"`
}

// KeyConcept is one entry of the key-concept outline.
type KeyConcept struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Topic           string `json:"topic"`
	Subtopic        string `json:"subtopic"`
	SubtopicDisplay string `json:"subtopic_display"`
}

// ConceptExplanation is the structured AI explanation of a key concept.
type ConceptExplanation struct {
	Concept           string   `json:"concept"`
	Subtopic          string   `json:"subtopic"`
	Topic             string   `json:"main_topic"`
	SimpleExplanation string   `json:"simple_explanation"`
	KeyPoints         []string `json:"key_points"`
	MemoryTricks      []string `json:"memory_tricks"`
	RealWorldExample  string   `json:"real_world_example"`
	ExamTip           string   `json:"exam_tip"`
}
