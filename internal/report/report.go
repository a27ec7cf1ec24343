// Operator-facing report rendering, shared by the bot, the CLI and the
// HTTP API. The wording follows the bot's Ukrainian message set.

package report

import (
	"fmt"
	"strings"

	"go-resume-finder/internal/resume"
)

// SiteHeader opens a per-site report.
func SiteHeader(site string) string {
	return fmt.Sprintf("<b>Звіт пошуку кандидатів на %s</b>", site)
}

// Candidate renders one ranked resume as an HTML message. File-upload
// resumes get the reduced variant: no skills, experience or education
// lines, with a note explaining why.
func Candidate(index int, r resume.Ranked) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📌 Кандидат №%d\n", index)
	fmt.Fprintf(&b, "- <b>Посада</b>: <a href=\"%s\">%s</a>\n", r.Ref, r.Record.Position)

	if r.Record.IsFile {
		fmt.Fprintf(&b, "- Усі ключові слова з якими знайдено співпадіння в резюме: %s\n", r.Record.Keywords)
		fmt.Fprintf(&b, "- Кількість балів: %d\n", r.Record.Points)
		b.WriteString("- Резюме завантажено файлом, а не заповнено на сайті, тому розділи навичок, освіти та досвіду не знайдені.")
		return b.String()
	}

	fmt.Fprintf(&b, "- %s\n", r.Record.Experience)
	fmt.Fprintf(&b, "- %s\n", r.Record.Education)
	if !r.Record.Skills.IsZero() {
		fmt.Fprintf(&b, "- Навички кандидата, що співпали з вказаними: %s\n", r.Record.Skills)
	}
	fmt.Fprintf(&b, "- Усі ключові слова з якими знайдено співпадіння в резюме: %s\n", r.Record.Keywords)
	fmt.Fprintf(&b, "- Кількість балів: %d", r.Record.Points)
	return b.String()
}

// CandidateText is the console rendition of Candidate.
func CandidateText(index int, r resume.Ranked) string {
	html := Candidate(index, r)
	replacer := strings.NewReplacer("<b>", "", "</b>", "", fmt.Sprintf("<a href=\"%s\">", r.Ref), "", "</a>", " ("+r.Ref+")")
	return replacer.Replace(html)
}
