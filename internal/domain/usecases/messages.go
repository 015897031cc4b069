package usecases

// Canned assistant strings. These are part of the product surface: tests and
// the transport layer rely on them verbatim.
const (
	WelcomeMessage = `Welcome! I am DocuChat, your PDF analysis assistant. Upload a PDF document and ask me anything about it.

I can help you:
- Analyze PDF documents
- Answer questions about document content
- Extract key information
- Process multiple PDFs (just ask to upload another one anytime!)

Please upload a PDF file to get started.`

	identityResponse = `I am DocuChat, a PDF document analysis assistant.

My main capabilities include:
- Reading and analyzing PDF documents
- Answering questions about document content
- Extracting key information from documents
- Helping users understand complex documents

Feel free to upload a PDF and ask me questions about it.`

	uploadPrompt = "Please upload a PDF file to analyze!"

	switchAck = "Sure! I can help you analyze another PDF. Please upload the new PDF file."

	extractionFailed = "Error: Could not extract text from the PDF. Please upload a valid PDF file."

	// NoFileUploaded is sent by the transport when the upload wait times out.
	NoFileUploaded = "No file uploaded. Please try again."
)

// promptFraming is the fixed system framing embedded at the top of every
// combined prompt.
const promptFraming = `You are DocuChat, a PDF document analysis assistant. Use the following PDF content to answer the user's question.
Analyze the PDF content carefully and provide accurate, helpful responses.`
