package domain

// CaptionPlaceholder fills the user lines of a caption when the user
// left them empty.
const CaptionPlaceholder = "[待补充]"

// CaptionHashtag is the fixed hashtag suffix of every assembled caption.
const CaptionHashtag = "#WeYear年终总结"

// AssembleCaption builds the final shareable caption from the selected
// draft text and the two user-supplied lines. The output format is part
// of the product contract and must not change:
//
//	draft
//
//	💬 我这一句：<summary or placeholder>
//	🎯 明年想做：<goal or placeholder>
//
//	#WeYear年终总结
func AssembleCaption(draft, userSummary, userGoal string) string {
	if userSummary == "" {
		userSummary = CaptionPlaceholder
	}
	if userGoal == "" {
		userGoal = CaptionPlaceholder
	}
	return draft +
		"\n\n💬 我这一句：" + userSummary +
		"\n🎯 明年想做：" + userGoal +
		"\n\n" + CaptionHashtag
}
