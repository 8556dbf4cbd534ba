// efixcalc evaluates efix operations from the command line:
//   efixcalc mul 1.5 -2.25
//   efixcalc --width 128 sqrt 2
//   efixcalc --width 32 --raw consts
//   efixcalc batch jobs.yaml
// Results are the same on every platform.
package main

import "fmt"
import "io"
import "log"
import "os"
import "strings"

import "github.com/spf13/cobra"

type options struct {
	configFile string
	width int
	raw bool
}

func main() {
	log.SetFlags(0)
	err := newRootCommand(os.Stdout).Execute()
	if err != nil { log.Fatal(err) }
}

func newRootCommand(out io.Writer) *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use: "efixcalc <op> [operands]",
		Short: "Deterministic fixed point calculator",
		Long: "Evaluates fixed point operations. Available operations:\n  " +
			strings.Join(operationNames(), ", "),
		Args: cobra.MinimumNArgs(1),
		SilenceUsage: true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, _, err := opts.resolve(cmd, 0)
			if err != nil { return err }
			res, err := calc.Eval(args[0], args[1:])
			if err != nil { return err }
			_, err = fmt.Fprintln(out, res.Text)
			return err
		},
	}
	root.SetOut(out)
	flags := root.PersistentFlags()
	flags.IntVarP(&opts.width, "width", "w", 64, "total bits of the fixed point type (32, 64 or 128)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&opts.raw, "raw", false, "print raw bits in hex instead of decimal")
	root.Flags().SetInterspersed(false) // operands like -1.5 are not flags

	root.AddCommand(&cobra.Command{
		Use: "consts",
		Short: "Print the constants of the selected width",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, _, err := opts.resolve(cmd, 0)
			if err != nil { return err }
			for _, named := range calc.Consts() {
				_, err = fmt.Fprintf(out, "%-8s %s\n", named.Name, named.Text)
				if err != nil { return err }
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use: "batch <file.yaml>",
		Short: "Evaluate a YAML job list concurrently",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadBatch(args[0])
			if err != nil { return err }
			calc, conf, err := opts.resolve(cmd, batch.Width)
			if err != nil { return err }
			results, checksum, err := runBatch(cmd.Context(), calc, batch.Jobs, conf.Workers)
			if err != nil { return err }
			for i, res := range results {
				job := batch.Jobs[i]
				_, err = fmt.Fprintf(out, "%s(%s) = %s\n", job.Op, strings.Join(job.Args, ", "), res.Text)
				if err != nil { return err }
			}
			_, err = fmt.Fprintf(out, "%s checksum %016x\n", calc.Name(), checksum)
			return err
		},
	})

	return root
}

// resolve merges the config file, the width requested by a batch file
// (if not zero) and the explicit flags, in increasing precedence.
func (self *options) resolve(cmd *cobra.Command, batchWidth int) (calculator, config, error) {
	conf, err := loadConfig(self.configFile)
	if err != nil { return nil, conf, err }
	if batchWidth != 0 { conf.Width = batchWidth }
	if cmd.Flags().Changed("width") { conf.Width = self.width }
	if cmd.Flags().Changed("raw") { conf.Raw = self.raw }
	err = conf.validate()
	if err != nil { return nil, conf, err }

	calc, err := newCalculator(conf.Width, conf.Raw)
	return calc, conf, err
}
