package scoring

import "regexp"

// ATS-friendly vocabularies. Matching is presence-based: a term counts
// once no matter how often it repeats.
var technicalKeywords = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node",
	"sql", "nosql", "mongodb", "postgresql", "mysql", "aws", "azure",
	"docker", "kubernetes", "git", "ci/cd", "agile", "scrum", "devops",
	"machine learning", "ai", "data science", "analytics", "api", "rest",
	"microservices", "cloud", "linux", "windows", "ios", "android",
}

var actionVerbs = []string{
	"achieved", "improved", "developed", "created", "designed", "built",
	"implemented", "managed", "led", "increased", "decreased", "reduced",
	"optimized", "enhanced", "streamlined", "automated", "delivered",
	"launched", "established", "collaborated", "coordinated", "facilitated",
}

var softSkillTerms = []string{
	"leadership", "communication", "teamwork", "problem-solving",
	"analytical", "creative", "adaptable", "detail-oriented",
	"time management", "critical thinking", "collaboration",
}

// Bare numeric signals of quantified impact.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\+`),
}

// Verb-plus-number phrasings, matched against the lower-cased haystack.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`increased.*\d+`),
	regexp.MustCompile(`decreased.*\d+`),
	regexp.MustCompile(`improved.*\d+`),
	regexp.MustCompile(`reduced.*\d+`),
	regexp.MustCompile(`saved.*\d+`),
	regexp.MustCompile(`generated.*\d+`),
	regexp.MustCompile(`\d+.*users`),
	regexp.MustCompile(`\d+.*customers`),
	regexp.MustCompile(`\d+.*projects`),
}
