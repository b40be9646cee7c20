package llm

import (
	"fmt"
	"strings"
)

func buildGeneratePrompt(topic string) string {
	return fmt.Sprintf(`Write a short text in Polish (100-150 words) on the topic: "%s".

Requirements:
- Difficulty level: A2-B1 (simple sentences, basic vocabulary)
- The text must be coherent and interesting
- Use everyday vocabulary
- Avoid complex grammatical constructions

Return ONLY the Polish text, no translation, no comments.`, topic)
}

func buildTranslatePrompt(word, context string) string {
	var b strings.Builder
	if context != "" {
		fmt.Fprintf(&b, "Context (full text): %q\n\n", context)
	}
	fmt.Fprintf(&b, `Translate from Polish to Russian: %q

Output ONLY a valid JSON object matching this exact schema:
{
  "translation": "<Russian translation>",
  "baseForm": "<dictionary form of the word, if it is an inflected verb/noun>",
  "partOfSpeech": "<part of speech>",
  "note": "<short clarification in Russian if needed, optional>"
}

Output ONLY the JSON, no markdown, no explanations.`, word)
	return b.String()
}

func buildBatchTranslatePrompt(words []string) string {
	return fmt.Sprintf(`You are a Polish-Russian dictionary editor.

Translate each of these Polish words for a Russian-speaking learner:
%s

Output ONLY a valid JSON array, one object per input word, in input order:
[
  {
    "polish": "<the word exactly as given>",
    "russian": "<Russian translation>",
    "baseForm": "<dictionary form, empty if the word is already the base form>",
    "example": "<one short natural Polish example sentence using the word>"
  }
]

Output ONLY the JSON array, no markdown, no explanations.`, strings.Join(words, "\n"))
}

func buildNotesExtractPrompt(notes string) string {
	return fmt.Sprintf(`You are a Polish-Russian dictionary editor. A Russian-speaking learner
of Polish wrote down words during the day, possibly with typos, mixed with
abbreviations and fragments of other languages.

Learner notes:
---
%s
---

Tasks:
1. Find the Polish words and phrases in the notes, including misspelled ones.
2. Correct the spelling.
3. Translate each into Russian.
4. Tokens that are not Polish or are too ambiguous to fix go into "unrecognized"
   with a short reason in Russian.
5. When you corrected a spelling, explain the correction as a warning in Russian.

Output ONLY a valid JSON object matching this exact schema:
{
  "cards": [
    {
      "polish": "<corrected Polish word or phrase>",
      "originalText": "<the spelling from the notes, only if it differed>",
      "russian": "<Russian translation>",
      "baseForm": "<dictionary form, empty if already base form>",
      "example": "<one short natural Polish example sentence>"
    }
  ],
  "unrecognized": [
    {"text": "<token from the notes>", "note": "<reason in Russian>"}
  ],
  "warnings": ["<correction explanation in Russian>"]
}

Output ONLY the JSON, no markdown, no explanations.`, notes)
}
