package quiz

import "fmt"

// PageKind identifies what a wizard page asks for.
type PageKind int

const (
	PageName PageKind = iota
	PageQuestion
	PageOpenQuestions
	PageResult
)

func (k PageKind) String() string {
	switch k {
	case PageName:
		return "name"
	case PageQuestion:
		return "question"
	case PageOpenQuestions:
		return "open-questions"
	case PageResult:
		return "result"
	default:
		return fmt.Sprintf("PageKind(%d)", int(k))
	}
}

// Page is one step of the wizard. Question is set only for PageQuestion.
type Page struct {
	Kind     PageKind
	Index    int
	Question *Question
}

// PageCount is the number of answerable pages for n questions: the name
// page, one page per question and the open-questions page.
func PageCount(n int) int {
	return n + 2
}

// pageAt maps an index to its page. Both BuildPages and Session.PageAt go
// through here so construction and lookup cannot drift.
func pageAt(questions []Question, i int) (Page, bool) {
	total := PageCount(len(questions))
	switch {
	case i < 0 || i >= total:
		return Page{}, false
	case i == 0:
		return Page{Kind: PageName, Index: i}, true
	case i == total-1:
		return Page{Kind: PageOpenQuestions, Index: i}, true
	default:
		return Page{Kind: PageQuestion, Index: i, Question: &questions[i-1]}, true
	}
}

// BuildPages returns the ordered answerable pages for questions.
func BuildPages(questions []Question) []Page {
	total := PageCount(len(questions))
	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		p, _ := pageAt(questions, i)
		pages = append(pages, p)
	}
	return pages
}
