// Package redact removes secret material from patch text before it is sent
// to the LLM analyzer.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key blocks, AWS access key IDs, bearer tokens, and
// provider-specific tokens (Anthropic, OpenAI, GitHub, Slack). Redaction is
// deliberately over-broad; a hidden value costs the model some context, a
// leaked one costs more.
package redact
