// Package prompts holds the instruction texts sent to the generative
// AI service. Keeping them in one place makes iteration on wording a
// one-file change.
package prompts

// ClassifyPrompt asks for a single class label for a document scan
const ClassifyPrompt = `You are classifying a scanned archive document.
Answer with exactly one word from this list: diplomatic, casual, correspondence, photograph, other.
Answer with the single word only, no punctuation.`

// OCRPrompt asks for a verbatim transcription of a document scan
const OCRPrompt = `Transcribe all legible text from this scanned document exactly as written.
Preserve line breaks. Do not translate, correct spelling, or add commentary.
If no text is legible, answer with an empty response.`

// TranslatePromptFormat wraps source text for translation to English
const TranslatePromptFormat = `Translate the following historical document text to English.
Keep the register formal and preserve proper names as written.
Return only the translation.

%s`

// SummarizePromptFormat wraps translated text for summarization
const SummarizePromptFormat = `Summarize the following meeting minutes in three to five sentences.
Name the decisions taken and the people mentioned. Return only the summary.

%s`

// PaintingDescriptionPrompt asks for a catalog description of a painting
const PaintingDescriptionPrompt = `You are a museum cataloger describing a painting.
Write a catalog description of two to four sentences: subject, composition, palette, and apparent technique.
If a signature or date is visible, mention it. Do not invent an artist or year.`
