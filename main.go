package network

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/todoapp/network-go/config"
	"github.com/todoapp/network-go/exchange"
	"github.com/todoapp/network-go/flags"
	"github.com/todoapp/network-go/input"
	"github.com/todoapp/network-go/logging"
	"github.com/todoapp/network-go/output"
	"github.com/todoapp/network-go/request"
	"github.com/todoapp/network-go/version"
)

const requestIDHeader = "X-Request-Id"

type Options struct {
	// Transport is used for sending HTTP requests.
	// If nil, a clone of http.DefaultTransport is used.
	Transport http.RoundTripper
}

func Main(options *Options) error {
	return run(os.Args, os.Stdin, os.Stdout, os.Stderr, options)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, options *Options) error {
	if options == nil {
		options = &Options{}
	}

	// Parse flags
	args, flagSet, optionSet, err := flags.Parse(args)
	if err != nil {
		if flagSet != nil {
			flagSet.PrintUsage(stderr)
		}
		return err
	}

	// Check --version and --licenses
	if optionSet.ShowVersion {
		fmt.Fprintf(stdout, "todonet %s\n", version.Current())
		return nil
	}
	if optionSet.ShowLicenses {
		version.PrintLicenses(stdout)
		return nil
	}

	// Load profile and set up logging
	profile, err := loadProfile(optionSet)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(firstNonEmpty(optionSet.LogLevel, profile.LogLevel, logging.DefaultLevel))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logger := logging.New("todonet", stderr, level)

	// Parse positional arguments
	inputOptions := optionSet.InputOptions
	inputOptions.BaseURL = profile.BaseURL
	inputOptions.Header = profile.Headers
	spec, err := input.ParseArgs(args, stdin, &inputOptions)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(stderr)
		return err
	}
	if err != nil {
		return err
	}
	if optionSet.RequestID {
		spec.Header = withRequestID(spec.Header, uuid.New().String())
	}

	// Build request
	d, err := request.NewBuilder(logger).Build(*spec)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	logger.Debug("request", lager.Data{"description": output.Describe(d)})

	writer := bufio.NewWriter(stdout)
	defer writer.Flush()
	outputOptions := optionSet.OutputOptions
	printer := newPrinter(writer, &outputOptions)

	if outputOptions.PrintRequest || optionSet.Offline {
		if err := printer.PrintRequest(d); err != nil {
			return err
		}
	}
	if optionSet.Offline {
		return nil
	}

	// Send request and receive response
	exchangeOptions := optionSet.ExchangeOptions
	exchangeOptions.Transport = options.Transport
	resp, err := exchange.SendRequest(context.Background(), d, &exchangeOptions)
	if err != nil {
		logger.Error("send-failed", err, lager.Data{"url": d.URL()})
		return err
	}
	defer resp.Body.Close()
	logger.Info("received", lager.Data{"url": d.URL(), "status": resp.StatusCode})

	// Print response
	if outputOptions.PrintResponseHeader {
		if err := printer.PrintStatusLine(resp.Proto, resp.Status, resp.StatusCode); err != nil {
			return err
		}
		if err := printer.PrintHeader(resp.Header); err != nil {
			return err
		}
		writer.Flush()
	}
	if outputOptions.OutputFile != "" {
		fileWriter := output.NewFileWriter(d.ParsedURL(), &outputOptions)
		n, err := fileWriter.Write(resp.Body)
		if err != nil {
			return err
		}
		logger.Info("saved", lager.Data{"path": fileWriter.Path(), "bytes": n})
		fmt.Fprintln(stderr, fileWriter.Summary(n))
		return nil
	}
	if outputOptions.PrintResponseBody {
		if err := printer.PrintBody(resp.Body, resp.Header.Get("Content-Type")); err != nil {
			return err
		}
	}

	return nil
}

func loadProfile(optionSet *flags.OptionSet) (*config.Profile, error) {
	path := optionSet.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return &config.Profile{}, nil
	}
	return config.Load(path, optionSet.ConfigRequired)
}

func newPrinter(w io.Writer, options *output.Options) output.Printer {
	if options.EnableColor {
		return output.NewPrettyPrinter(output.PrettyPrinterConfig{
			Writer:      w,
			EnableColor: true,
		})
	}
	return output.NewPlainPrinter(w)
}

// withRequestID returns header with X-Request-Id set to id unless any
// casing of it is already present.
func withRequestID(header map[string]string, id string) map[string]string {
	for name := range header {
		if strings.EqualFold(name, requestIDHeader) {
			return header
		}
	}
	if header == nil {
		header = make(map[string]string)
	}
	header[requestIDHeader] = id
	return header
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
