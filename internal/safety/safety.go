// ABOUTME: Input-safety policy checked before any cache or model work happens
// ABOUTME: Blocks only clearly harmful categories; benign off-topic input passes through
package safety

import "strings"

// Verdict is the result of evaluating one user message.
type Verdict struct {
	Blocked  bool
	Category string
}

// Policy decides whether a user message may enter the pipeline. Blocked
// messages get the fixed refusal text and never reach the model.
// Off-topic-but-benign questions are NOT blocked here; redirecting those
// is the model persona's job.
type Policy interface {
	Evaluate(question string) Verdict
}

// RefusalMessage is the fixed bilingual response for blocked input.
const RefusalMessage = "آسف، مش هقدر أساعدك في الموضوع ده. أنا هنا عشان أجاوب على أسئلة كلية التجارة جامعة حلوان. 🎓\n" +
	"Sorry, I can't help with that. I'm here to answer questions about the Faculty of Commerce at Helwan University."

// KeywordPolicy blocks messages containing terms from a small set of
// harmful categories. Matching is case-insensitive substring over the
// normalized message, same shape as the original keyword screening.
type KeywordPolicy struct {
	categories map[string][]string
}

// NewKeywordPolicy returns the default policy covering requests for
// illegal-activity instructions: intrusion/hacking, drugs, and
// weapons/explosives, in both Arabic and English.
func NewKeywordPolicy() *KeywordPolicy {
	return &KeywordPolicy{
		categories: map[string][]string{
			"hacking": {
				"hack", "هاكر", "اختراق", "تهكير", "malware", "keylogger",
				"steal password", "سرقة باسورد", "فيروسات",
			},
			"drugs": {
				"drugs", "مخدرات", "حشيش", "كوكايين", "هيروين", "تصنيع مخدر",
			},
			"weapons": {
				"bomb", "explosive", "قنبلة", "متفجرات", "تصنيع سلاح", "make a gun",
			},
		},
	}
}

// NewKeywordPolicyWithCategories builds a policy from custom category
// term lists, for deployments that maintain their own blocklist.
func NewKeywordPolicyWithCategories(categories map[string][]string) *KeywordPolicy {
	return &KeywordPolicy{categories: categories}
}

// Evaluate checks the message against every category's term list.
func (p *KeywordPolicy) Evaluate(question string) Verdict {
	lower := strings.ToLower(question)
	for category, terms := range p.categories {
		for _, term := range terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				return Verdict{Blocked: true, Category: category}
			}
		}
	}
	return Verdict{}
}
