package preload

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/preload/internal/version"
	"github.com/arthur-debert/preload/pkg/cobrax/topics"
	"github.com/arthur-debert/preload/pkg/errors"
	"github.com/arthur-debert/preload/pkg/logging"
	"github.com/arthur-debert/preload/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:     "preload",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.source, "source", "", MsgFlagSource)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	tm, err := topics.Initialize(rootCmd, topicSource{a: a}, topics.Options{
		Format:   ".md",
		Renderer: a.slotRenderer,
		Prepare: func() error {
			_, err := a.slots()
			return err
		},
	})
	if err != nil {
		// Only a nil source fails, which cannot happen here
		panic(err)
	}

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTopicsCmd(tm))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// slotNamesCompletion provides shell completion for slot keys
func slotNamesCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		reg, err := a.slots()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return reg.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.slots()
			if err != nil {
				return err
			}

			var slots []style.SlotInfo
			for _, key := range reg.Keys() {
				text, err := reg.Get(key)
				if err != nil {
					return err
				}
				slots = append(slots, style.NewSlotInfo(key, text))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.outputRenderer(out).RenderSlotList(slots))
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var (
		raw         bool
		placeholder string
	)

	cmd := &cobra.Command{
		Use:               "show <slot>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: slotNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.show")

			reg, err := a.slots()
			if err != nil {
				return err
			}

			key := args[0]
			text, err := reg.Get(key)
			if err != nil {
				if !errors.IsErrorCode(err, errors.ErrNotFound) || !cmd.Flags().Changed("placeholder") {
					return err
				}
				logger.Info().Str("slot", key).Msg("Slot missing, printing placeholder")
				text = placeholder
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprint(out, text)
				return nil
			}
			fmt.Fprint(out, a.slotRenderer(out).Render(text, ".md"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	cmd.Flags().StringVar(&placeholder, "placeholder", "", MsgFlagPlaceholder)

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "check <slot>...",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		Example:           MsgCheckExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: slotNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.slots()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := a.outputRenderer(out)

			var missing []string
			for _, key := range args {
				present := reg.Has(key)
				if !present {
					missing = append(missing, key)
				}
				fmt.Fprintln(out, r.RenderCheck(key, present))
			}

			if len(missing) > 0 {
				return errors.Newf(errors.ErrNotFound, MsgErrSlotsMissing, len(missing), len(args)).
					WithDetail(errors.DetailMissing, missing)
			}
			return nil
		},
	}
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tm.Ready(); err != nil {
				return err
			}
			tm.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// RenderError formats err for the terminal the error is written to
func RenderError(err error, color bool) string {
	return style.NewRenderer(color).RenderError(err)
}
