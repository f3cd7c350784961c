// Command rnguniq reports or filters out repeated adjacent lines, like
// uniq(1). It reads a file or stdin and writes the first line of every run of
// equivalent lines.
package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	cmd := newCommand()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "rnguniq failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func newCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "rnguniq [file]",
		Short:        "Report or filter out repeated adjacent lines",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(opts, in, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "compare lines case-insensitively")
	flags.IntVarP(&opts.skipFields, "skip-fields", "f", 0, "skip the first N whitespace separated fields when comparing")
	flags.StringVarP(&opts.match, "match", "m", "", "only consider lines matching this regular expression")
	flags.BoolVarP(&opts.count, "count", "c", false, "prefix lines by the number of occurrences")
	return cmd
}
