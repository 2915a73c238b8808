// Package dictionary looks English words up in the Cambridge online
// dictionary. It fetches the word page, extracts the distinct senses
// with their example sentences and the US transcription, and hands them
// out as Entry values.
package dictionary
