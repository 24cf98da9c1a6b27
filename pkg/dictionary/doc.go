// Package dictionary reads word lists for ladder searches.
//
// A dictionary file holds one word per line. Surrounding whitespace is
// trimmed and repeated words are kept once in first-seen order. A line whose
// first non-blank character is '#' is a comment, so no word can start with
// '#'. Blank lines and lines that are not valid UTF-8 are skipped as well:
//
//	# three-letter words
//	DOG
//	COG
//	cot
//
// [Options] can upper-case every word so that mixed-case lists compare
// equal, and restrict the result to words of a single length, which is all a
// ladder search can ever use.
//
//	d, err := dictionary.ReadFile("/usr/share/dict/words", dictionary.Options{
//	    FoldCase: true,
//	    Length:   4,
//	})
//	if err != nil {
//	    return err
//	}
//	g := wordgraph.FromWords(d.Words)
package dictionary
