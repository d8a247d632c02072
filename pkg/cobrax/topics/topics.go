// Package topics provides a pluggable, topic-based help system for Cobra CLI applications.
// It extends the default Cobra help so that `help <topic>` shows any named
// block of text held by a Source, such as the content registry.
package topics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/preload/pkg/render"
)

// Source is a read-only, keyed collection of topic texts
type Source interface {
	Has(name string) bool
	Get(name string) (string, error)
	Keys() []string
}

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	source       Source
	originalHelp func(*cobra.Command, []string)
	format       string
	renderer     func(w io.Writer) render.Renderer
	prepare      func() error
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Format is the extension passed to the renderer. Defaults to ".md".
	Format string

	// Renderer picks a renderer for the writer a topic is printed to.
	// Defaults to render.PlainRenderer.
	Renderer func(w io.Writer) render.Renderer

	// Prepare runs before the source is read for a topic or the listing.
	// Its error is returned from the help command instead of showing
	// an empty topic list.
	Prepare func() error
}

// New creates a new TopicManager reading from src
func New(src Source, opts Options) *TopicManager {
	tm := &TopicManager{
		source:   src,
		format:   opts.Format,
		renderer: opts.Renderer,
		prepare:  opts.Prepare,
	}

	if tm.format == "" {
		tm.format = ".md"
	}

	if tm.renderer == nil {
		tm.renderer = func(io.Writer) render.Renderer { return &render.PlainRenderer{} }
	}

	return tm
}

// Ready runs the Prepare hook, if any
func (tm *TopicManager) Ready() error {
	if tm.prepare == nil {
		return nil
	}
	return tm.prepare()
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	if !tm.source.Has(name) {
		return nil, false
	}
	content, err := tm.source.Get(name)
	if err != nil {
		return nil, false
	}
	return &Topic{Name: name, Content: content}, true
}

// ListTopics returns all available topic names in sorted order
func (tm *TopicManager) ListTopics() []string {
	topics := tm.source.Keys()
	sort.Strings(topics)
	return topics
}

// Show writes the rendered topic to w
func (tm *TopicManager) Show(w io.Writer, topic *Topic) {
	fmt.Fprint(w, tm.renderer(w).Render(topic.Content, tm.format))
}

// PrintList writes the topic listing to w
func (tm *TopicManager) PrintList(w io.Writer, appName string) {
	topics := tm.ListTopics()
	if len(topics) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	fmt.Fprintln(w, "Available help topics:")
	for _, name := range topics {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize sets up the topic-based help system on rootCmd
func Initialize(rootCmd *cobra.Command, src Source, opts Options) (*TopicManager, error) {
	if src == nil {
		return nil, fmt.Errorf("topics source cannot be nil")
	}
	tm := New(src, opts)

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}

			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}

			for _, name := range tm.ListTopics() {
				if strings.HasPrefix(name, toComplete) {
					completions = append(completions, name)
				}
			}

			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return nil
			}

			if args[0] == "topics" {
				if err := tm.Ready(); err != nil {
					return err
				}
				tm.PrintList(cmd.OutOrStdout(), rootCmd.Name())
				return nil
			}

			// Command help never depends on the topic source
			if target, _, err := rootCmd.Find(args); err == nil && target != nil && target != rootCmd {
				tm.originalHelp(target, args)
				return nil
			}

			if err := tm.Ready(); err != nil {
				return err
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				tm.Show(cmd.OutOrStdout(), topic)
				return nil
			}

			tm.originalHelp(rootCmd, args)
			return nil
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(helpCmd)

	return tm, nil
}
