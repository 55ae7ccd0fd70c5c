package analyzer

import (
	"strings"
)

// questionCount is the fixed length of the generated question list.
const questionCount = 10

// questionBank maps lowercase skill labels to their interview question.
var questionBank = map[string]string{
	"sql":             "Explain indexing and when it helps to speed up queries.",
	"react":           "Explain state management options and when to choose which.",
	"dsa":             "How would you optimize search in sorted data?",
	"data structures": "How would you optimize search in sorted data?",
	"algorithms":      "Explain the time complexity of quicksort vs mergesort.",
	"java":            "Explain memory management in Java and how the Garbage Collector works.",
	"python":          "What are decorators in Python and how do they work?",
	"javascript":      "Explain closures and the event loop in JavaScript.",
	"typescript":      "What are the benefits of strict type checking in TypeScript?",
	"oop":             "Explain the four pillars of OOP with real-world examples.",
	"dbms":            "What are ACID properties and why are they important?",
	"os":              "Explain the difference between a process and a thread.",
	"networks":        "What happens when you type a URL into a browser?",
	"aws":             "How is scaling handled in AWS (e.g., using ASG and ELB)?",
	"docker":          "What is the difference between an image and a container?",
	"kubernetes":      "Explain pods, deployments, and services in Kubernetes.",
	"ci/cd":           "How would you set up a basic CI/CD pipeline from scratch?",
	"mongodb":         "When would you choose a NoSQL database over a relational database?",
	"redis":           "How does Redis achieve high performance and when should it be used?",
	"rest":            "What are the key constraints of RESTful architecture?",
	"graphql":         "How does GraphQL solve the overfetching problem of REST?",
}

// genericQuestions backfills the question list when fewer than ten
// skill-specific questions apply.
var genericQuestions = []string{
	"Walk me through your resume and your most challenging project.",
	"Describe a time you had to learn a new technology quickly.",
	"How do you handle disagreements on technical approaches within a team?",
	"What is your approach to debugging a complex issue in production?",
	"Where do you see your career heading in the next 3 to 5 years?",
	"How do you ensure your code is readable and maintainable?",
	"What is the most interesting technical article or book you've read recently?",
	"Describe a situation where you had to meet a tight deadline.",
	"How do you prioritize tasks when you have multiple deliverables?",
	"Tell me about a time you failed and what you learned from it.",
}

// BuildQuestions produces exactly ten interview questions with no
// duplicates: skill-specific questions first, in flattened skill order,
// then generic behavioral questions.
func BuildQuestions(flatSkills []string) []string {
	questions := make([]string, 0, questionCount)
	added := make(map[string]bool, questionCount)

	for _, skill := range flatSkills {
		if len(questions) >= questionCount {
			break
		}
		q, ok := questionBank[strings.ToLower(skill)]
		if !ok || added[q] {
			continue
		}
		added[q] = true
		questions = append(questions, q)
	}

	for _, q := range genericQuestions {
		if len(questions) >= questionCount {
			break
		}
		if added[q] {
			continue
		}
		added[q] = true
		questions = append(questions, q)
	}

	return questions
}
