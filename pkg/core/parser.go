package core

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var classTagPattern = regexp.MustCompile(`^\d{1,2}[A-Z]$`)

// priorityKeywords maps the recognized quick-input words to a priority.
var priorityKeywords = map[string]Priority{
	"hög":   PriorityHigh,
	"hog":   PriorityHigh,
	"high":  PriorityHigh,
	"prio1": PriorityHigh,
	"p1":    PriorityHigh,

	"medel":  PriorityMedium,
	"medium": PriorityMedium,
	"prio2":  PriorityMedium,
	"p2":     PriorityMedium,

	"låg":   PriorityLow,
	"lag":   PriorityLow,
	"low":   PriorityLow,
	"prio3": PriorityLow,
	"p3":    PriorityLow,
}

// ParseQuickInput extracts a class tag, a D/M reminder date and a priority
// keyword from one line of text, each at most once, scanning left to right.
// The remaining words form the title and body.
//
// The reminder is placed at 08:00 in now's location and returned in UTC;
// the week number is the ISO week of that local date.
func ParseQuickInput(input string, now time.Time) QuickParse {
	tokens := strings.Fields(input)
	used := make([]bool, len(tokens))

	result := QuickParse{Priority: DefaultPriority}
	var foundPriority bool

	for i, token := range tokens {
		if result.ClassTag == "" && classTagPattern.MatchString(token) {
			result.ClassTag = token
			used[i] = true
			continue
		}

		if result.ReminderAt == nil {
			if local, ok := ParseDayMonth(token, now); ok {
				at := local.UTC()
				week := ISOWeek(local)
				result.ReminderAt = &at
				result.WeekNumber = &week
				used[i] = true
				continue
			}
		}

		if !foundPriority {
			if p, ok := priorityKeywords[strings.ToLower(token)]; ok {
				result.Priority = p
				foundPriority = true
				used[i] = true
			}
		}
	}

	content := make([]string, 0, len(tokens))
	for i, token := range tokens {
		if !used[i] {
			content = append(content, token)
		}
	}

	n := titleTokenCount(len(content))
	result.Title = strings.Join(content[:n], " ")
	if result.Title == "" {
		result.Title = DefaultTitle
	}
	result.Body = strings.Join(content[n:], " ")
	return result
}

// titleTokenCount keeps short inputs whole and otherwise takes roughly
// sixty percent of the words, between four and six.
func titleTokenCount(words int) int {
	if words <= 4 {
		return words
	}
	n := int(math.Round(float64(words) * 0.6))
	return min(6, max(4, n))
}
