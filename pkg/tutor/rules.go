package tutor

// Category names a block of the rule table.
type Category string

const (
	CategoryMathematics  Category = "mathematics"
	CategoryScience      Category = "science"
	CategoryHistory      Category = "history"
	CategoryLanguageArts Category = "language_arts"
	CategoryGeneral      Category = "general"
)

// Rule pairs a keyword set with the canned reply it triggers.
type Rule struct {
	Category Category
	Keywords []string
	Template string
}

const MathematicsTemplate = `I'd be happy to help with math! Here are some tips:

1. **Break down the problems** into smaller steps
2. **Identify what you know** and what you need to find 
3. **Choose the right method** or formula
4. **Show your work** step by step
5. **Check your answer** by substituting back

What specific math topic are you working on? I can provide more targeted help!`

const ScienceTemplate = `Science is fascinating! Here's how to study science:
1. **Understand the concept** before memorizing facts
2. **Connect theory to real-world examples**
3. **Practice with diagrams** and visual aids
4. **Do experiments** when possible
5. **Ask "why" and "how"** questions 

What specific topic interests you most? I can help you explaining specific concepts!
                `

const HistoryTemplate = `History helps us understand the world! Study tips:

1. **Create timelines** to see connections between events
2. **Understand cause and effect** relationships
3. **Connect past events** to current situations
4. **Learn about key figures** and their contributions
5. **Use maps** to understand geographical context

Which historical period or event are you studying?`

const LanguageArtsTemplate = `Great question about language arts! Here are some study strategies:

1. **Read actively** - take notes and ask questions
2. **Practice writing** regularly
3. **Learn grammar rules** through examples
4. **Build vocabulary** by reading diverse texts
5. **Analyze literary devices** in stories and poems

What specific language art topic are you interested in?`

const GeneralTemplate = `I'm here to help with your studies! Here are some general study tips:
1.**Create a study schedule** and stick with it
2.**Find a quiet study space** free from distractions
3.**Focus on one topic at a time**
4.**Take regular breaks** (try the pomodoro technique)
5.**Use active learning** - summarize , teach others , make flashcards
6.**Get enough sleep** and stay healthy

What specific study topic are you interested in? I can provide more specific guidance!`

// DefaultRules is evaluated top to bottom; the first rule with a matching keyword wins.
// Keywords are lower case and matched as substrings.
var DefaultRules = []Rule{
	{
		Category: CategoryMathematics,
		Keywords: []string{"math", "mathematics", "solve", "calculate", "calculus"},
		Template: MathematicsTemplate,
	},
	{
		Category: CategoryScience,
		Keywords: []string{"science", "biology", "physics", "experiment"},
		Template: ScienceTemplate,
	},
	{
		Category: CategoryHistory,
		Keywords: []string{"history", "ancient", "medieval", "renaissance", "past", "civilization"},
		Template: HistoryTemplate,
	},
	{
		Category: CategoryLanguageArts,
		Keywords: []string{"english", "grammar", "spelling", "writing", "essay", "sentence", "literature"},
		Template: LanguageArtsTemplate,
	},
}

// DefaultRule answers when nothing in the table matches.
var DefaultRule = Rule{
	Category: CategoryGeneral,
	Template: GeneralTemplate,
}
