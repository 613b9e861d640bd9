package words

// Fixed instruction templates for the word task generations. The word itself
// is passed as the user prompt; each instruction forbids echoing it back.
const (
	promptWordDescription = "Return a brief definition for the word provided by the user " +
		"without using the word (or number, if relevant) in the definition."
	promptWordSynonyms = "List synonyms for the following word without using the word (or " +
		"number, if relevant) at all as a comma separated list"
	promptWordAntonyms = "List antonyms for the following word without using the word (or " +
		"number, if relevant) at all as a comma separated list"
	promptWordJeopardy = "Return a very brief Jeopardy!-style description related to the " +
		"following word without using the word (or number, if relevant) at all"
)
