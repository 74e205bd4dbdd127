package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/marina/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers the shell completion request for the command name, if
// there is one, and exits. It returns otherwise.
//
// Enable it with:
//
//	complete -C marina marina
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the command line: global flags, subcommands with their
// flags and arguments.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmd := range commands {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argPredictor(cmd.Name()),
		}
	}
	return root
}

// flagPredictors predicts the values of every flag of a flag set.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBoolFlag(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "boats-file", fl.Name == "o":
			flags[fl.Name] = predict.Files("*.csv")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func argPredictor(name string) complete.Predictor {
	switch name {
	case "session":
		return predict.Files("*.csv")
	case "remove", "pay":
		return complete.PredictFunc(boatNames)
	case "topic":
		return complete.PredictFunc(topicNames)
	default:
		return predict.Nothing
	}
}

// boatNames predicts the names of the boats in the boat file.
func boatNames(prefix string) []string {
	inv, err := DecodeInventory()
	if err != nil {
		return nil
	}
	var names []string
	for _, b := range inv.Sorted() {
		if strings.HasPrefix(strings.ToLower(b.Name), strings.ToLower(prefix)) {
			names = append(names, b.Name)
		}
	}
	return names
}

func topicNames(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	var names []string
	for _, t := range topics {
		if strings.HasPrefix(t, prefix) {
			names = append(names, t)
		}
	}
	return names
}
