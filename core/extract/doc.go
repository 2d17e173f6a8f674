// Package extract pulls a single JSON object candidate out of free-form model
// output. Responses are routinely wrapped in prose, markdown fences, or
// rendered HTML, and are sometimes cut off mid-object; the [Extractor] tries a
// fixed sequence of strategies and reports which one produced the candidate.
//
// Strategies, first success wins:
//
//  1. a ```json fenced block
//  2. an unlabeled ``` fenced block
//  3. a quote-aware balanced-brace scan from the first '{'
//  4. a greedy slice from the first '{' to the last '}'
//
// Fence and greedy candidates must pass [IsBalanced]. With
// [WithTruncationRecovery] an unterminated object is returned as a truncated
// candidate for the caller to repair.
package extract
