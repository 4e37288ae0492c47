package ai

// PIICategories enumerates the kinds of sensitive content the detector asks
// the collaborator to find.
var PIICategories = []string{
	"Name",
	"Address",
	"Phone Number",
	"Email Address",
	"SSN",
	"Financial Account",
	"Health Record",
	"Trade Secret",
	"Privileged Communication",
}

// SummarizeSystemPrompt frames summarization for legal review.
const SummarizeSystemPrompt = "You are a litigation support assistant. Summarize the document below in three to five sentences for an attorney performing first-pass review. State the document type, the parties involved, and the key facts. Respond with plain text only."

// DetectPIISystemPrompt asks for redaction candidates as a JSON array.
const DetectPIISystemPrompt = "You are a litigation support assistant reviewing a document for confidential content. Identify every span of text that contains personally identifiable or otherwise sensitive information in any of these categories: Name, Address, Phone Number, Email Address, SSN, Financial Account, Health Record, Trade Secret, Privileged Communication. Respond ONLY with a JSON array of objects of the form {\"text\": \"<the exact span>\", \"reason\": \"<the category>\"}. Respond with [] if nothing is found."

// SuggestTagsSystemPrompt asks for review tags as a JSON array of strings.
const SuggestTagsSystemPrompt = "You are a litigation support assistant. Suggest between one and five short review tags for the document below (for example \"Contract\", \"Financial\", \"Privileged\"). Respond ONLY with a JSON array of strings."
