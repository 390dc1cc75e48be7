package bank

// seedQuestions returns the built-in lesson content: Python data types,
// three difficulty levels.
func seedQuestions() map[int][]Question {
	return map[int][]Question{
		1: {
			{
				Text:    "What type is the result of: 5 + 2.0?",
				Options: []string{"int", "float", "str", "bool"},
				Correct: "float",
			},
			{
				Text:    "Which data type is immutable?",
				Options: []string{"list", "dict", "tuple", "set"},
				Correct: "tuple",
			},
		},
		2: {
			{
				Text:    "What will type('True') return?",
				Options: []string{"str", "bool", "int", "NoneType"},
				Correct: "str",
			},
			{
				Text:    "Which operation modifies a list in-place?",
				Options: []string{"append()", "+", "*", "sorted()"},
				Correct: "append()",
			},
		},
		3: {
			{
				Text:    "What is the output of: type({1: 'a', 2: 'b'})?",
				Options: []string{"dict", "list", "tuple", "set"},
				Correct: "dict",
			},
			{
				Text:    "What type is returned by: set([1,2,2,3])?",
				Options: []string{"list", "tuple", "set", "dict"},
				Correct: "set",
			},
		},
	}
}
