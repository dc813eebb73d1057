package quiz

// Payload is the POST /api/score request body.
type Payload struct {
	Name    string            `json:"name"`
	Answers map[string]string `json:"answers"`
}

// BuildPayload serializes an answer set. Question ids are included only
// when answered; the open-question keys are included whenever present,
// even if empty.
func BuildPayload(a AnswerSet) Payload {
	p := Payload{
		Name:    a[KeyName],
		Answers: make(map[string]string, len(a)),
	}
	for k, v := range a {
		switch k {
		case KeyName:
			continue
		case KeyWhyUs, KeyNonNegotiables:
			p.Answers[k] = v
		default:
			if v != "" {
				p.Answers[k] = v
			}
		}
	}
	return p
}
