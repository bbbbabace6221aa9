package tts

// baseVocabulary is the built-in word set for the dictionary filter: a core
// of common English plus the legal terms that dominate caselaw prose and
// the spoken forms the other preparation passes produce. Callers needing
// real coverage load a full word list on top with Dictionary.Load.
var baseVocabulary = []string{
	// Function words and common English.
	"a", "about", "above", "accept", "according", "across", "act", "action",
	"actually", "add", "after", "again", "against", "ago", "agree", "agreed",
	"agreement", "all", "allow", "almost", "alone", "along", "already",
	"also", "although", "always", "among", "amount", "an", "analysis", "and",
	"another", "answer", "any", "anyone", "anything", "appear", "apply",
	"approach", "are", "area", "argue", "argued", "argument", "around", "as",
	"ask", "at", "available", "away", "back", "bad", "base", "based", "be",
	"because", "become", "been", "before", "begin", "behind", "being",
	"believe", "believed", "best", "better", "between", "beyond", "both",
	"bring", "but", "by", "call", "can", "cannot", "carry", "case", "cause",
	"certain", "change", "clear", "clearly", "come", "common", "concern",
	"condition", "consider", "considered", "continue", "control", "correct",
	"cost", "could", "course", "create", "current", "day", "decide",
	"describe", "despite", "detail", "details", "determine", "develop",
	"did", "different", "difficult", "direct", "discussion", "do", "does",
	"done", "down", "during", "each", "early", "effect", "either", "end",
	"enough", "entire", "establish", "even", "event", "ever", "every",
	"example", "except", "exist", "expect", "explain", "explained", "fact",
	"fail", "fails", "fair", "far", "few", "final", "finally", "find",
	"finding", "first", "follow", "following", "follows", "for", "form",
	"found", "from", "full", "further", "general", "give", "given", "go",
	"good", "great", "ground", "grounds", "had", "hand", "happen", "has",
	"have", "he", "hear", "heard", "hearing", "held", "help", "her", "here",
	"him", "his", "hold", "holding", "how", "however", "i", "idea", "if",
	"important", "in", "include", "included", "including", "indeed",
	"instead", "into", "involve", "involved", "is", "issue", "issues", "it",
	"its", "itself", "just", "keep", "kind", "know", "known", "large",
	"last", "later", "law", "lead", "least", "leave", "less", "let",
	"letter", "level", "light", "like", "likely", "limit", "line", "little",
	"long", "look", "made", "main", "make", "man", "many", "matter", "may",
	"mean", "means", "meet", "member", "mention", "mere", "merely", "might",
	"mind", "more", "moreover", "most", "move", "moved", "much", "must",
	"my", "name", "nature", "near", "necessary", "need", "neither", "never",
	"nevertheless", "new", "next", "no", "none", "nor", "not", "note",
	"nothing", "now", "number", "of", "off", "often", "old", "on", "once",
	"one", "only", "open", "or", "order", "ordered", "other", "others",
	"otherwise", "our", "out", "over", "own", "page", "pages", "part",
	"particular", "parties", "party", "past", "people", "per", "perhaps",
	"period", "person", "place", "plain", "point", "position", "possible",
	"power", "present", "press", "principle", "prior", "problem", "process",
	"produce", "proper", "provide", "provided", "public", "purpose", "put",
	"question", "raise", "raised", "rather", "reach", "read", "reason",
	"reasonable", "reasoning", "receive", "recent", "record", "regard",
	"relation", "rely", "remain", "remains", "require", "required",
	"requires", "rest", "result", "return", "review", "right", "rights",
	"room", "rule", "rules", "ruling", "run", "said", "same", "say", "says",
	"second", "section", "see", "seek", "seem", "seems", "seen", "sense",
	"set", "settled", "several", "shall", "she", "should", "show", "shown",
	"shows", "side", "similar", "simply", "since", "single", "small", "so",
	"some", "sound", "speak", "stand", "stands", "start", "state", "stated",
	"states", "still", "stop", "strong", "subject", "such", "support",
	"sure", "take", "taken", "tell", "term", "terms", "test", "text", "than",
	"that", "the", "their", "them", "themselves", "then", "there",
	"therefore", "these", "they", "thing", "think", "third", "this", "those",
	"though", "three", "through", "thus", "time", "to", "today", "together",
	"too", "true", "turn", "two", "under", "understand", "until", "up",
	"upon", "us", "use", "used", "value", "various", "very", "view", "visit",
	"want", "was", "way", "we", "well", "went", "were", "what", "whatever",
	"when", "where", "whether", "which", "while", "who", "whole", "whom",
	"whose", "why", "will", "with", "within", "without", "word", "words",
	"work", "would", "write", "year", "years", "yet", "you", "your",

	// Legal vocabulary.
	"accord", "affirm", "affirmed", "amendment", "appeal", "appealed",
	"appellant", "appellate", "appellee", "authority", "bench", "brief",
	"burden", "caselaw", "cases", "charge", "charged", "circuit",
	"citation", "cite", "cited", "claim", "claims", "code", "conclusion",
	"concur", "concurring", "consent", "consensual", "constitution",
	"constitutional", "contract", "conviction", "counsel", "county", "court",
	"courts", "crime", "criminal", "damages", "decided", "decision",
	"defendant", "defendants", "denied", "dissent", "dissenting", "district",
	"docket", "due", "duty", "evidence", "exception", "exceptions",
	"exhibit", "federal", "filed", "grant", "granted", "guilty", "harm",
	"harms", "hereby", "improper", "judge", "judges", "judgment",
	"judicial", "jurisdiction", "juror", "jurors", "jury", "justice",
	"juvenile", "juveniles", "lawful", "liability", "liable", "litigation",
	"majority", "mandate", "motion", "notice", "objection", "offense",
	"opinion", "overruled", "petition", "petitioner", "plaintiff",
	"plaintiffs", "precedent", "privilege", "procedure", "proceeding",
	"proceedings", "proof", "prosecution", "relief", "remand", "remanded",
	"reporter", "respondent", "reverse", "reversed", "search", "segregation",
	"seizure", "sentence", "standard", "statute", "statutes", "statutory",
	"stay", "stipulation", "supreme", "testified", "testimony", "trial",
	"tribunal", "unlawful", "venue", "verdict", "violation", "waiver",
	"warrant", "warrants", "witness", "witnesses",

	// Spoken forms produced by the other preparation passes.
	"compare", "doctor", "etcetera", "mister", "misses", "percent",
	"versus",

	// Month names, for normalized dates.
	"january", "february", "march", "april", "june", "july",
	"august", "september", "october", "november", "december",
}
