// Package analysis implements the text analytics engine.
//
// Two pipelines share a tokenizer and a sentence segmenter:
//
//   - ExtractKeywords ranks terms by TF x ln(sentences / DF).
//   - Summarize selects the highest weighted sentences and returns
//     them in document order.
//
// Every function here is pure. Tables are rebuilt on each call and
// nothing is cached, so callers may run analyses concurrently.
package analysis
