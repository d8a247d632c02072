// Package catalog embeds the default presentation content, one markdown file
// per slot under slots/. The slot key is the file name without its extension.
package catalog

import "embed"

// Slot keys shipped with the default catalog. They match the placeholder ids
// used by the presentation page.
const (
	SlotTasks       = "tasks-content"
	SlotPrompt      = "prompt-content"
	SlotPlan        = "plan-content"
	SlotWalkthrough = "walkthrough-content"
)

// Dir is the directory inside FS that holds the slot files
const Dir = "slots"

//go:embed slots/*.md
var FS embed.FS

// Slots lists the default slot keys in presentation order
func Slots() []string {
	return []string{SlotTasks, SlotPrompt, SlotPlan, SlotWalkthrough}
}
