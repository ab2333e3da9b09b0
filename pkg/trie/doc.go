// ## Overview
// Package trie implements a prefix tree (trie) over strings.
// Every node holds one character, a back reference to its parent, its depth
// and a word mark. Words sharing a prefix share the nodes of that prefix, and
// removing a word prunes the nodes no other word needs anymore.
//
// ## Example usage:
//
//	t := trie.New()
//	t.Add("word").Add("word1")
//
//	fmt.Println(t.Search("wor"))          // [word word1]
//	fmt.Println(t.Depth("word"))          // 4
//	fmt.Println(t.Depth("test"))          // -1
//	fmt.Println(t.Get("word1").String())  // word1
//
//	t.Remove("word1")
//	fmt.Println(t.Search("word"))         // [word]
//
// Missing keys are not errors: Get returns nil, Depth returns -1 and Search
// returns an empty slice.
package trie
