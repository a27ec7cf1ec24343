package report

import (
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	"go-resume-finder/internal/resume"
)

func TestCandidateStructured(t *testing.T) {
	r := resume.Ranked{
		Ref: "https://www.work.ua/resumes/1/",
		Record: &resume.Record{
			Position:   "Python Developer",
			Keywords:   resume.MatchSet(mapset.NewSet("python", "git")),
			Skills:     resume.MatchSet(mapset.NewSet("git flow")),
			Experience: resume.ExperienceProvided,
			Education:  resume.EducationNotProvided,
			Points:     3,
		},
	}

	msg := Candidate(1, r)
	assert.Contains(t, msg, "Кандидат №1")
	assert.Contains(t, msg, `<a href="https://www.work.ua/resumes/1/">Python Developer</a>`)
	assert.Contains(t, msg, resume.ExperienceProvided)
	assert.Contains(t, msg, "git flow")
	assert.Contains(t, msg, "Кількість балів: 3")
}

func TestCandidateFileUpload(t *testing.T) {
	r := resume.Ranked{
		Ref: "https://www.work.ua/resumes/2/",
		Record: &resume.Record{
			Position: "QA Engineer",
			Keywords: resume.NoMatches(resume.NoKeywordMatches),
			IsFile:   true,
		},
	}

	msg := Candidate(2, r)
	assert.Contains(t, msg, "Резюме завантажено файлом")
	assert.NotContains(t, msg, "Навички кандидата")
	assert.NotContains(t, msg, resume.ExperienceNotProvided)
}

func TestCandidateWithoutSkillsSection(t *testing.T) {
	r := resume.Ranked{
		Ref: "https://robota.ua/candidates/3",
		Record: &resume.Record{
			Position:   "Developer",
			Keywords:   resume.MatchSet(mapset.NewSet("python")),
			Experience: resume.ExperienceProvided,
			Education:  resume.EducationProvided,
			Points:     3,
		},
	}

	msg := Candidate(1, r)
	assert.NotContains(t, msg, "Навички кандидата")
	assert.Contains(t, msg, resume.EducationProvided)
}

func TestCandidateTextStripsMarkup(t *testing.T) {
	r := resume.Ranked{
		Ref: "https://robota.ua/candidates/4",
		Record: &resume.Record{
			Position: "Developer",
			Keywords: resume.NoMatches(resume.KeywordsNotProvided),
		},
	}

	text := CandidateText(1, r)
	assert.False(t, strings.Contains(text, "<b>") || strings.Contains(text, "<a href"))
	assert.Contains(t, text, r.Ref)
}
