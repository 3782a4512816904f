package usecase

import (
	"regexp"
	"strings"
)

// stripRule is one ordered entry in the lexical-removal pipeline.
// Every match is replaced with a single space; word boundaries keep the
// patterns from eating into ingredient names.
type stripRule struct {
	name    string
	pattern *regexp.Regexp
}

// stripRules is applied in order, each rule operating on the output of
// the previous one. The order is load-bearing: later patterns assume
// earlier ones already removed overlapping noise (e.g. "2-3 inch" goes
// with the quantity, so "inch" never reaches the noun rules).
var stripRules = []stripRule{
	// Bare numbers, fractions, and ranges, optionally with a linear-dimension unit ("2-3 inch", "1/2", "2.5 cm")
	{"quantities", regexp.MustCompile(`\b\d+(?:\.\d+)?(?:\s*[-/]\s*\d+(?:\.\d+)?)?(?:[\s-]*(?:inch(?:es)?|cm|mm))?\b`)},
	{"volume units", regexp.MustCompile(`\b(?:cups?|tablespoons?|tbsps?|teaspoons?|tsps?|fluid\s+ounces?|fl\.?\s*oz|pints?|quarts?|gallons?|milliliters?|millilitres?|deciliters?|decilitres?|liters?|litres?|ml|dl|l)\b`)},
	{"weight units", regexp.MustCompile(`\b(?:pounds?|lbs?|ounces?|oz|kilograms?|kgs?|kg|grams?|milligrams?|mg|g)\b`)},
	{"piece nouns", regexp.MustCompile(`\b(?:cloves?|stalks?|sticks?|pieces?|chunks?|strips?|wedges?|slices?|heads?|bunch(?:es)?|sprigs?|lea(?:f|ves)|bulbs?|cans?|jars?|packages?|pkgs?|boxes?|bags?|containers?)\b`)},
	{"prep states", regexp.MustCompile(`\b(?:diced|chopped|peeled|minced|sliced|grated|shredded|crushed|mashed|pureed|ground|crumbled|julienned|cubed|halved|quartered|torn|broken|beaten|whipped)\b`)},
	{"prep verbs", regexp.MustCompile(`\b(?:cut|cutting|slice|slicing|chop|chopping|dice|dicing|mince|mincing|into|in|to|about|approximately)\b`)},
	{"cleaning states", regexp.MustCompile(`\b(?:washed|rinsed|cleaned|scrubbed|drained|patted|trimmed|deveined|deseeded|pitted|cored|stemmed|husked|shucked|picked|sorted)\b`)},
	{"freshness states", regexp.MustCompile(`\b(?:fresh|freshly|dried|frozen|defrosted|thawed|bottled|smoked|cured|aged)\b`)},
	{"cooking states", regexp.MustCompile(`\b(?:raw|cooked|blanched|parboiled|steamed|boiled|roasted|grilled|fried|sauteed|sautéed|braised|stewed|caramelized|toasted|seared|poached)\b`)},
	{"dietary terms", regexp.MustCompile(`\b(?:organic|natural|wild|farm-raised|free-range|grass-fed|gluten-free|low-sodium|low-fat|fat-free|unsalted|sweetened|unsweetened|sugar-free)\b`)},
	{"temperature and texture", regexp.MustCompile(`\b(?:cold|hot|warm|room\s+temperature|chilled|softened|melted|firm|soft|crisp|crispy|crunchy)\b`)},
	{"intensity adverbs", regexp.MustCompile(`\b(?:very|extra|super|lightly|finely|coarsely|roughly|thinly|thickly|slightly)\b`)},
	{"size adjectives", regexp.MustCompile(`\b(?:extra-large|bite-sized?|large|medium|small|mini|baby|jumbo|xl)\b`)},
	{"color adjectives", regexp.MustCompile(`\b(?:red|green|yellow|orange|purple|white|black|brown|golden|dark|light|pale)\b`)},
	{"ripeness and age", regexp.MustCompile(`\b(?:day-old|overripe|unripe|ripe|mature|young|new|old)\b`)},
	{"cuisines", regexp.MustCompile(`\b(?:italian|french|spanish|mexican|asian|chinese|japanese|thai|indian|greek|mediterranean|english|american)\b`)},
	{"part nouns", regexp.MustCompile(`\b(?:boneless|skinless|seedless|top|bottom|end|tip|root|skin|peel|flesh|meat|bone)\b`)},
	// "to"/"for"/"as" are stripped by earlier rules, so the phrase tails
	// are matched with their lead-ins optional.
	{"optionality phrases", regexp.MustCompile(`\b(?:optional|(?:to\s+)?taste|(?:as\s+)?needed|(?:for\s+)?(?:serving|garnish)|(?:if\s+)?desired|preferably|ideally)\b`)},
	{"stopwords", regexp.MustCompile(`\b(?:and|or|with|without|plus|a|an|the|of|from|for|on|at|by)\b`)},
	{"parentheticals", regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)},
}

var (
	// Separator punctuation becomes a space, then runs of whitespace collapse.
	separatorPattern  = regexp.MustCompile(`[,&/\-–—]`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// Normalize reduces a raw ingredient phrase to its comparison key:
// lowercase, quantity/unit/descriptor noise removed, whitespace
// collapsed. It is total and idempotent; an empty result means the
// phrase was all noise and must be treated as unmatchable.
// The result is only ever used as a comparison key, never displayed.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range stripRules {
		s = rule.pattern.ReplaceAllString(s, " ")
	}
	s = separatorPattern.ReplaceAllString(s, " ")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
