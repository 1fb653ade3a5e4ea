package chat

import "strings"

// Intent selects the response template for a turn.
type Intent int

const (
	IntentOverview Intent = iota
	IntentDeflect
	IntentFollowUp
	IntentPrice
	IntentComposition
	IntentUsage
)

func (i Intent) String() string {
	switch i {
	case IntentDeflect:
		return "deflect"
	case IntentFollowUp:
		return "follow-up"
	case IntentPrice:
		return "price"
	case IntentComposition:
		return "composition"
	case IntentUsage:
		return "usage"
	}
	return "overview"
}

// Diagnosis-oriented phrases the bot must not answer.
var deflectionPhrases = []string{
	"chẩn đoán",
	"bệnh gì",
	"ung thư",
	"trầm cảm",
	"khối u",
	"có phải tôi bị",
}

// Continuation phrases asking for another product on the same topic.
var followUpPhrases = []string{"khác", "nữa", "thêm", "tương tự"}

var pricePhrases = []string{"giá", "bao nhiêu"}
var compositionPhrases = []string{"thành phần", "hoạt chất"}
var usagePhrases = []string{"dùng cho", "triệu chứng"}

// ClassifyIntent inspects the raw question case-insensitively. Evaluation
// order is the tie-break when several phrase lists match: deflection wins
// over everything, a continuation phrase only counts as a follow-up when the
// conversation already has a topic.
func ClassifyIntent(raw string, hasTopic bool) Intent {
	text := strings.ToLower(raw)

	switch {
	case containsAny(text, deflectionPhrases):
		return IntentDeflect
	case hasTopic && containsAny(text, followUpPhrases):
		return IntentFollowUp
	case containsAny(text, pricePhrases):
		return IntentPrice
	case containsAny(text, compositionPhrases):
		return IntentComposition
	case containsAny(text, usagePhrases):
		return IntentUsage
	}
	return IntentOverview
}
