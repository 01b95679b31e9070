package flags

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"

	"github.com/todoapp/network-go/exchange"
	"github.com/todoapp/network-go/input"
	"github.com/todoapp/network-go/logging"
	"github.com/todoapp/network-go/output"
)

type FlagSet interface {
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options

	Offline        bool
	RequestID      bool
	ConfigPath     string
	ConfigRequired bool
	LogLevel       string
	ShowVersion    bool
	ShowLicenses   bool
}

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

func Parse(args []string) ([]string, FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdinIsTerminal:  isatty.IsTerminal(os.Stdin.Fd()),
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
}

func parse(args []string, terminalInfo terminalInfo) ([]string, FlagSet, *OptionSet, error) {
	inputOptions := input.Options{}
	exchangeOptions := exchange.Options{}
	outputOptions := output.Options{}
	optionSet := &OptionSet{}
	var ignoreStdin bool
	printFlag := "\000" // "\000" is a special value that indicates user did not specified --print
	verifyFlag := "yes"
	configPath := ""
	logLevel := ""

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] BASE_URL [/PATH] [REQUEST_ITEM [REQUEST_ITEM ...]]")
	flagSet.BoolVarLong(&inputOptions.JSON, "json", 'j', "data items are serialized as JSON (default)")
	flagSet.BoolVarLong(&inputOptions.Form, "form", 'f', "data items are serialized as application/x-www-form-urlencoded")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (Rhb)")
	flagSet.BoolVarLong(&ignoreStdin, "ignore-stdin", 0, "do not attempt to read stdin")
	flagSet.BoolVarLong(&optionSet.Offline, "offline", 0, "build and describe the request without sending it")
	flagSet.BoolVarLong(&exchangeOptions.FollowRedirects, "follow", 'F', "follow 30x Location redirects")
	flagSet.StringVarLong(&verifyFlag, "verify", 0, "verify server TLS certificate", "yes|no")
	flagSet.BoolVarLong(&exchangeOptions.ForceHTTP1, "http1", 0, "force HTTP/1.1 protocol")
	flagSet.StringVarLong(&outputOptions.OutputFile, "output", 'o', "save response body to FILE", "FILE")
	flagSet.BoolVarLong(&outputOptions.Overwrite, "overwrite", 0, "overwrite the --output file if it exists")
	flagSet.StringVarLong(&configPath, "config", 0, "read defaults from a YAML profile", "FILE")
	flagSet.StringVarLong(&logLevel, "log-level", 0, "log level: debug, info, error, fatal", "LEVEL")
	flagSet.BoolVarLong(&optionSet.RequestID, "request-id", 0, "send a generated X-Request-Id header")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicenses, "licenses", 0, "print licenses of the dependencies and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return nil, flagSet, nil, errors.Wrap(err, "parsing flags")
	}

	// Check stdin
	if !ignoreStdin && !terminalInfo.stdinIsTerminal {
		inputOptions.ReadStdin = true
	}

	// Parse --print
	if err := parsePrintFlag(printFlag, terminalInfo.stdoutIsTerminal, &outputOptions); err != nil {
		return nil, flagSet, nil, err
	}

	// Parse --verify
	skipVerify, err := parseVerifyFlag(verifyFlag)
	if err != nil {
		return nil, flagSet, nil, err
	}
	exchangeOptions.SkipVerify = skipVerify

	// Parse --log-level; empty defers to the profile
	if logLevel != "" {
		if _, err := logging.ParseLevel(logLevel); err != nil {
			return nil, flagSet, nil, err
		}
	}

	// Color
	outputOptions.EnableColor = terminalInfo.stdoutIsTerminal

	optionSet.InputOptions = inputOptions
	optionSet.ExchangeOptions = exchangeOptions
	optionSet.OutputOptions = outputOptions
	optionSet.LogLevel = logLevel
	optionSet.ConfigPath = configPath
	optionSet.ConfigRequired = configPath != ""
	return flagSet.Args(), flagSet, optionSet, nil
}

func parsePrintFlag(printFlag string, stdoutIsTerminal bool, outputOptions *output.Options) error {
	if printFlag == "\000" {
		// --print is not specified
		if stdoutIsTerminal {
			outputOptions.PrintResponseHeader = true
			outputOptions.PrintResponseBody = true
		} else {
			outputOptions.PrintResponseBody = true
		}
	} else {
		for _, c := range printFlag {
			switch c {
			case 'R':
				outputOptions.PrintRequest = true
			case 'h':
				outputOptions.PrintResponseHeader = true
			case 'b':
				outputOptions.PrintResponseBody = true
			default:
				return errors.Errorf("Invalid char in --print value (must be consist of Rhb): %c", c)
			}
		}
	}
	return nil
}

func parseVerifyFlag(verifyFlag string) (skipVerify bool, err error) {
	switch strings.ToLower(verifyFlag) {
	case "yes", "true":
		return false, nil
	case "no", "false":
		return true, nil
	default:
		return false, errors.Errorf("Value of --verify must be yes or no: %s", verifyFlag)
	}
}
