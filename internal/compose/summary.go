// Package compose builds generation prompts from profile data and delegates to
// the external text-generation service for resumes and cover letters.
package compose

import (
	"fmt"
	"strings"

	"github.com/jordan/autoapply/internal/types"
)

// placeholder stands in for optional profile fields that were left empty, so
// the generation prompt never contains dangling labels.
const placeholder = "N/A"

// RenderProfileSummary flattens a profile into the text block embedded in
// generation prompts: contact fields, comma-joined skills, and one bulleted
// line per education, experience and project entry.
func RenderProfileSummary(profile *types.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "Email: %s\n", profile.Email)
	fmt.Fprintf(&b, "Phone: %s\n", orPlaceholder(profile.Phone))
	fmt.Fprintf(&b, "Location: %s\n", orPlaceholder(profile.Location))
	fmt.Fprintf(&b, "Summary: %s\n", orPlaceholder(profile.Summary))

	fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(profile.Skills, ", "))

	b.WriteString("\nEducation:\n")
	for _, edu := range profile.Education {
		fmt.Fprintf(&b, "- %s in %s from %s (%s)\n", edu.Degree, edu.Field, edu.Institution, edu.Year)
	}

	b.WriteString("\nExperience:\n")
	for _, exp := range profile.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s): %s\n", exp.Title, exp.Company, exp.Duration, exp.Description)
	}

	b.WriteString("\nProjects:\n")
	for _, proj := range profile.Projects {
		fmt.Fprintf(&b, "- %s: %s\n", proj.Name, proj.Description)
	}

	return b.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
