package model

// All lists every table the application owns, in dependency order.
func All() []interface{} {
	return []interface{}{
		&StudyTopic{},
		&UserProfile{},
		&ChatSession{},
		&ChatMessage{},
	}
}
