// Package catalog holds the static list of job postings served by the search
// endpoint. The catalog is compiled in, never persisted and never fetched from
// an external board; job IDs are fixed so that an ID returned by one search
// call resolves on a later apply call.
package catalog

import (
	"time"

	"github.com/jordan/autoapply/internal/types"
)

// postings is the catalog definition. PostedDate is filled in per call,
// relative to the current time; CompatibilityScore is filled in by the caller.
var postings = []types.Job{
	{
		ID:           "a1f0658e-3ba2-4f09-9aab-2f81a09c7d10",
		Title:        "Senior Full Stack Developer",
		Company:      "TechCorp",
		Location:     "San Francisco, CA",
		Description:  "We are looking for an experienced Full Stack Developer to join our team. Must have expertise in React, Node.js, and MongoDB.",
		Requirements: []string{"React", "Node.js", "MongoDB", "REST APIs", "5+ years experience"},
		SalaryRange:  "$120k - $180k",
		JobType:      "Full-time",
		Platform:     "LinkedIn",
	},
	{
		ID:           "b7c3d721-57e4-4b41-8a2e-64d0f1f3b2a9",
		Title:        "AI/ML Engineer",
		Company:      "InnovateLabs",
		Location:     "Remote",
		Description:  "Join our AI team to build cutting-edge machine learning solutions. Experience with Python, TensorFlow, and large-scale data processing required.",
		Requirements: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Deep Learning"},
		SalaryRange:  "$140k - $200k",
		JobType:      "Full-time",
		Platform:     "Indeed",
	},
	{
		ID:           "c9921d4d-0ab5-4e9f-b1f0-8a3c55b7e6c2",
		Title:        "Frontend Developer",
		Company:      "DesignCo",
		Location:     "New York, NY",
		Description:  "Creative frontend developer needed for building beautiful user interfaces. Must be proficient in React, TypeScript, and modern CSS.",
		Requirements: []string{"React", "TypeScript", "CSS", "Responsive Design", "Figma"},
		SalaryRange:  "$90k - $130k",
		JobType:      "Full-time",
		Platform:     "Wellfound",
	},
	{
		ID:           "d4b8f3a6-91cc-48d3-a7de-13e9c2a4f8b5",
		Title:        "DevOps Engineer",
		Company:      "CloudSystems",
		Location:     "Austin, TX",
		Description:  "DevOps engineer to manage our cloud infrastructure. Experience with AWS, Docker, and Kubernetes is essential.",
		Requirements: []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Linux"},
		SalaryRange:  "$110k - $160k",
		JobType:      "Full-time",
		Platform:     "LinkedIn",
	},
	{
		ID:           "e5d2c8b1-76af-4c2d-9e48-0b7f4a91d3c6",
		Title:        "Data Scientist",
		Company:      "DataDrive",
		Location:     "Boston, MA",
		Description:  "Data scientist to analyze large datasets and build predictive models. Strong statistical background required.",
		Requirements: []string{"Python", "SQL", "Statistics", "Machine Learning", "Data Visualization"},
		SalaryRange:  "$100k - $150k",
		JobType:      "Full-time",
		Platform:     "Indeed",
	},
	{
		ID:           "f6e1a9d4-28bb-4d76-8c3f-5a2e9b0c7d18",
		Title:        "Backend Developer",
		Company:      "ServerTech",
		Location:     "Seattle, WA",
		Description:  "Backend developer for building scalable APIs. Experience with Python, FastAPI, and PostgreSQL required.",
		Requirements: []string{"Python", "FastAPI", "PostgreSQL", "REST APIs", "Microservices"},
		SalaryRange:  "$105k - $145k",
		JobType:      "Full-time",
		Platform:     "Wellfound",
	},
}

// postedDaysAgo mirrors the catalog order above: how many days before "now"
// each posting went up.
var postedDaysAgo = []int{2, 1, 3, 5, 4, 6}

// Jobs returns a fresh copy of the catalog with posted dates computed relative
// to now. Callers may mutate the returned slice freely; the catalog itself is
// read-only shared state.
func Jobs(now time.Time) []types.Job {
	jobs := make([]types.Job, len(postings))
	copy(jobs, postings)
	for i := range jobs {
		jobs[i].PostedDate = now.AddDate(0, 0, -postedDaysAgo[i])
	}
	return jobs
}

// FindByID returns the catalog job with the given ID, or nil if no posting
// matches.
func FindByID(jobs []types.Job, id string) *types.Job {
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}
