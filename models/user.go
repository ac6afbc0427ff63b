package models

// UserStats tracks aggregate activity counters for a user
type UserStats struct {
	QuizzesTaken   int     `dynamodbav:"quizzesTaken" json:"quizzesTaken"`
	SwapsCompleted int     `dynamodbav:"swapsCompleted" json:"swapsCompleted"`
	HoursTaught    int     `dynamodbav:"hoursTaught" json:"hoursTaught"`
	HoursLearned   int     `dynamodbav:"hoursLearned" json:"hoursLearned"`
	TotalScore     int     `dynamodbav:"totalScore" json:"totalScore"`
	AvgAccuracy    float64 `dynamodbav:"avgAccuracy" json:"avgAccuracy"`
	Streak         int     `dynamodbav:"streak" json:"streak"`
	LastQuizDate   string  `dynamodbav:"lastQuizDate,omitempty" json:"lastQuizDate,omitempty"`
}

// Activity is a single entry in a user's recent activity feed
type Activity struct {
	Type        string `dynamodbav:"type" json:"type"`
	Description string `dynamodbav:"description" json:"description"`
	Date        string `dynamodbav:"date" json:"date"`
}

// DSAProgressEntry records a user's latest status on one problem
type DSAProgressEntry struct {
	ProblemID   string `dynamodbav:"problemId" json:"problemId"`
	Status      string `dynamodbav:"status" json:"status"`
	LastAttempt string `dynamodbav:"lastAttempt" json:"lastAttempt"`
}

// User defines the structure for user accounts
type User struct {
	ID             string             `dynamodbav:"id" json:"id"`
	Name           string             `dynamodbav:"name" json:"name"`
	Email          string             `dynamodbav:"email" json:"email"`
	Password       string             `dynamodbav:"password" json:"-"`
	Avatar         string             `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Bio            string             `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	SkillsOffered  []string           `dynamodbav:"skillsOffered,omitempty" json:"skillsOffered,omitempty"`
	SkillsWanted   []string           `dynamodbav:"skillsWanted,omitempty" json:"skillsWanted,omitempty"`
	Badges         []string           `dynamodbav:"badges,omitempty" json:"badges,omitempty"`
	ResumeScore    int                `dynamodbav:"resumeScore" json:"resumeScore"`
	QuizScore      int                `dynamodbav:"quizScore" json:"quizScore"`
	DSAScore       int                `dynamodbav:"dsaScore" json:"dsaScore"`
	Stats          UserStats          `dynamodbav:"stats" json:"stats"`
	RecentActivity []Activity         `dynamodbav:"recentActivity,omitempty" json:"recentActivity,omitempty"`
	DSAProgress    []DSAProgressEntry `dynamodbav:"dsaProgress,omitempty" json:"dsaProgress,omitempty"`
	ResumeText     string             `dynamodbav:"resumeText,omitempty" json:"-"`
	CreatedAt      string             `dynamodbav:"createdAt" json:"createdAt"`
}

// UserSummary carries the public display fields used when populating references
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AwardBadge adds a badge if the user does not already have it
func (u *User) AwardBadge(badge string) {
	for _, b := range u.Badges {
		if b == badge {
			return
		}
	}
	u.Badges = append(u.Badges, badge)
}

// Summary returns the public display fields for this user
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UsersTable is the DynamoDB table name for user accounts
const UsersTable = "Users"

// UserEmailIndex is the GSI keyed on email
const UserEmailIndex = "email-index"
