// Package llm is the optional LLM-assisted analysis path.
//
// It satisfies the same [Analyzer] contract as the pattern scanner, so the
// pipeline does not care which strategy produced a file's review. Model
// responses are free-form prose parsed heuristically (section extraction plus
// keyword classification); a response that defies the structure yields empty
// findings rather than an error. [AnalyzeWithFallback] degrades to the
// pattern scanner per file when the model call fails.
package llm
