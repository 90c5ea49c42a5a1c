package api

// Endpoint catalog for the exam-prep backend. Paths are relative to the
// configured base URL and match the Django-style trailing-slash convention
// of the service.
const (
	EndpointTokenObtain  = "/api/users/token/"
	EndpointTokenRefresh = "/api/users/token/refresh/"
	EndpointRegister     = "/api/users/register/"
	EndpointUserDetail   = "/api/users/auth/"

	EndpointTopics        = "/api/practice/topics/"
	EndpointQuestions     = "/api/practice/questions/"
	EndpointCheckAnswer   = "/api/practice/questions/%s/check/"
	EndpointExamQuestions = "/api/exam/questions/"
	EndpointExamStats     = "/api/exam/stats/"
	EndpointExamSubmit    = "/api/exam/submit/"

	EndpointAttempts          = "/api/progress/attempts/"
	EndpointProgressSummary   = "/api/progress/summary/"
	EndpointProgressTopics    = "/api/progress/topics/"
	EndpointProgressSubtopics = "/api/progress/subtopics/"
	EndpointWeakAreas         = "/api/progress/weak-areas/"
	EndpointRecentActivity    = "/api/progress/recent-activity/"

	EndpointKeyConcepts    = "/api/concepts/"
	EndpointExplainConcept = "/api/concepts/explain/"
)
