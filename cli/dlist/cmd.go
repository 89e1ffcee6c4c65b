package main

import (
	"fmt"
	"io"
	"strconv"

	dlist "github.com/sagernet/sing-dlist"
	E "github.com/sagernet/sing-dlist/common/exceptions"
	"github.com/sagernet/sing-dlist/common/log"
	"github.com/sagernet/sing-dlist/common/x/constraints"
	"github.com/sagernet/sing-dlist/list"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = log.NewLogger("dlist")

type flags struct {
	Type            string
	GreaterThan     string
	RemoveAt        int
	RemoveBeforeMax bool
	Verbose         bool

	removeAtSet bool
}

func newCommand() *cobra.Command {
	f := new(flags)

	command := &cobra.Command{
		Use:   "dlist [flags] <values...>",
		Short: "build a doubly-linked list and run its queries",
		Long: `Values are inserted with AddFirst in the order given, so "dlist 3 1 4"
builds the list [4 1 3].`,
		Example:       "  dlist -g 2 -r 0 -- 5 4 -3 2 1",
		Version:       dlist.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.removeAtSet = cmd.Flags().Changed("remove-at")
			return run(cmd.OutOrStdout(), f, args)
		},
	}

	command.Flags().StringVarP(&f.Type, "type", "t", "int", "Set the element type: int or float.")
	command.Flags().StringVarP(&f.GreaterThan, "greater-than", "g", "", "List the elements greater than this threshold.")
	command.Flags().IntVarP(&f.RemoveAt, "remove-at", "r", 0, "Remove the element at this index after the queries.")
	command.Flags().BoolVar(&f.RemoveBeforeMax, "remove-before-max", false, "Remove every element before the maximum after the queries.")
	command.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable debug logging.")

	return command
}

func run(writer io.Writer, f *flags, args []string) error {
	if f.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	switch f.Type {
	case "int":
		return execute(writer, f, args, strconv.Atoi)
	case "float":
		return execute(writer, f, args, func(value string) (float64, error) {
			return strconv.ParseFloat(value, 64)
		})
	default:
		return E.New("unknown element type: ", f.Type)
	}
}

func execute[T constraints.Number](writer io.Writer, f *flags, args []string, parse func(string) (T, error)) error {
	values, err := parseValues(args, parse)
	if err != nil {
		return err
	}
	l := list.New[T]()
	for _, value := range values {
		l.AddFirst(value)
	}
	logger.Debug("built ", l, " from ", len(values), " values")

	fmt.Fprintln(writer, "list:", l)
	fmt.Fprintln(writer, "count:", l.Count())
	fmt.Fprintln(writer, "index of first less than average:", l.IndexOfFirstLessThanAverage())
	fmt.Fprintln(writer, "sum after max:", l.SumAfterMax())

	if f.GreaterThan != "" {
		threshold, err := parse(f.GreaterThan)
		if err != nil {
			return E.Cause(err, "parse threshold")
		}
		fmt.Fprintln(writer, "greater than "+f.GreaterThan+":", l.GetElementsGreaterThan(threshold))
	}
	if f.removeAtSet {
		err = l.RemoveAt(f.RemoveAt)
		if err != nil {
			return E.Cause(err, "remove at")
		}
		logger.Debug("removed index ", f.RemoveAt)
		fmt.Fprintln(writer, "after remove at "+strconv.Itoa(f.RemoveAt)+":", l)
	}
	if f.RemoveBeforeMax {
		count := l.Count()
		l.RemoveBeforeMax()
		logger.Debug("dropped ", count-l.Count(), " values before max")
		fmt.Fprintln(writer, "after remove before max:", l)
	}
	return nil
}

func parseValues[T constraints.Number](args []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(args))
	var errors []error
	for _, arg := range args {
		value, err := parse(arg)
		if err != nil {
			errors = append(errors, E.Cause(err, "parse value"))
			continue
		}
		values = append(values, value)
	}
	return values, E.Errors(errors...)
}
