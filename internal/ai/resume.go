// Package ai implements the local heuristic stand-ins for an AI interview
// assistant: regex-based resume parsing, a static question bank, rule-based
// answer scoring and template summaries. Everything here is deterministic
// and side-effect free; no external provider is involved.
package ai

import (
	"regexp"
	"strings"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
)

// DefaultJobRole is used when no role keywords match at all.
const DefaultJobRole = "Software Engineer"

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// tried in priority order; first capture wins
	namePatterns = []*regexp.Regexp{
		// "Name: John Doe" or "Candidate - John Doe"
		regexp.MustCompile(`(?i)(?:name|candidate)[:\-\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		// title-case pair at the start of a line
		regexp.MustCompile(`(?m)^([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		// title-case pair following a resume/cv header line
		regexp.MustCompile(`(?i)(?:resume|cv|curriculum)[^\n]*\n.*?([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}
)

// roleKeywords maps job roles to lowercase keyword cues. Declaration order
// matters: ties on match count keep the earliest role.
var roleKeywords = []struct {
	Role     string
	Keywords []string
}{
	{"Frontend Developer", []string{
		"react", "vue", "angular", "javascript", "typescript", "html", "css",
		"frontend", "front-end", "ui", "ux", "web development", "responsive",
	}},
	{"Backend Developer", []string{
		"node", "python", "java", "spring", "django", "flask", "backend",
		"back-end", "api", "server", "database", "microservices", "rest",
	}},
	{"Full Stack Developer", []string{
		"fullstack", "full-stack", "full stack", "mean", "mern", "lamp",
		"end-to-end", "frontend and backend",
	}},
	{"Data Scientist", []string{
		"python", "r", "machine learning", "ml", "data science", "pandas",
		"numpy", "tensorflow", "pytorch", "analytics", "statistics",
	}},
	{"DevOps Engineer", []string{
		"devops", "aws", "azure", "docker", "kubernetes", "jenkins", "ci/cd",
		"terraform", "ansible", "linux", "cloud",
	}},
	{"Product Manager", []string{
		"product manager", "product management", "product strategy", "roadmap",
		"agile", "scrum", "stakeholder",
	}},
	{"QA Engineer", []string{
		"qa", "quality assurance", "testing", "automation", "selenium",
		"test cases", "bug tracking", "quality",
	}},
	{"Software Engineer", []string{
		"software engineer", "software development", "programming", "coding",
		"algorithms", "data structures",
	}},
}

// AnalyzeResume extracts contact fields and infers a job role from raw
// resume text. Fields that cannot be found come back empty; the job role
// always falls back to DefaultJobRole.
func AnalyzeResume(resumeText string) models.ResumeAnalysis {
	analysis := models.ResumeAnalysis{JobRole: DefaultJobRole}

	analysis.Email = emailPattern.FindString(resumeText)
	analysis.Phone = phonePattern.FindString(resumeText)

	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(resumeText); len(m) > 1 && m[1] != "" {
			analysis.Name = strings.TrimSpace(m[1])
			break
		}
	}

	analysis.JobRole = inferJobRole(resumeText)

	return analysis
}

// inferJobRole counts keyword hits per role and picks the strict maximum.
func inferJobRole(resumeText string) string {
	resumeLower := strings.ToLower(resumeText)

	role := DefaultJobRole
	maxMatches := 0
	for _, rk := range roleKeywords {
		matches := 0
		for _, keyword := range rk.Keywords {
			if strings.Contains(resumeLower, keyword) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			role = rk.Role
		}
	}
	return role
}
