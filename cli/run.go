package cli

import (
	"bufio"
	"fmt"
	"net/http"
	"os"

	"github.com/antonsterkhov/HttpClientCLI/exchange"
	"github.com/antonsterkhov/HttpClientCLI/input"
	"github.com/antonsterkhov/HttpClientCLI/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// run performs the whole cycle of one invocation: interpret the arguments,
// send the single request, render the response.
func run(cmd *cobra.Command, opts *options, method input.Method, rawURL string) error {
	req, err := input.ParseRequest(method, rawURL, opts.headers, input.BodySource{
		Data:      opts.data,
		DataGiven: cmd.Flags().Changed("data"),
		FilePath:  opts.file,
		Multipart: opts.multipart,
	})
	if err != nil {
		return err
	}

	exchangeOptions, err := opts.exchangeOptions()
	if err != nil {
		return err
	}

	resp, err := exchange.SendRequest(req, exchangeOptions)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(cmd, opts, req, resp)
}

func (o *options) exchangeOptions() (*exchange.Options, error) {
	timeout, err := parseDurationOrSeconds(o.timeout)
	if err != nil {
		return nil, err
	}
	auth, err := parseAuth(o.auth)
	if err != nil {
		return nil, err
	}

	return &exchange.Options{
		Timeout:         timeout,
		FollowRedirects: o.followRedirects,
		SkipVerify:      o.skipVerify,
		Auth:            auth,
		Transport:       o.transport,
	}, nil
}

func (o *options) outputOptions(printGiven bool) (*output.Options, error) {
	stdoutIsTerminal := isatty.IsTerminal(os.Stdout.Fd())

	outputOptions := output.Options{
		EnableColor: stdoutIsTerminal,
		Download:    o.output != "",
		OutputFile:  o.output,
		Overwrite:   o.overwrite,
	}

	if !printGiven {
		outputOptions.PrintResponseHeader = stdoutIsTerminal
		outputOptions.PrintResponseBody = true
		return &outputOptions, nil
	}

	for _, c := range o.print {
		switch c {
		case 'h':
			outputOptions.PrintResponseHeader = true
		case 'b':
			outputOptions.PrintResponseBody = true
		default:
			return nil, input.NewUsageError(fmt.Sprintf("invalid char in --print value (must consist of h and b): %c", c))
		}
	}
	return &outputOptions, nil
}

func printResponse(cmd *cobra.Command, opts *options, req *input.Request, resp *http.Response) error {
	outputOptions, err := opts.outputOptions(cmd.Flags().Changed("print"))
	if err != nil {
		return err
	}

	if outputOptions.Download {
		fileWriter := output.NewFileWriter(req.URL, outputOptions)
		written, err := fileWriter.Download(resp)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), fileWriter.Summary(written))
		return nil
	}

	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()

	var printer output.Printer
	if outputOptions.EnableColor {
		printer = output.NewPrettyPrinter(output.PrettyPrinterConfig{
			Writer:      writer,
			EnableColor: true,
		})
	} else {
		printer = output.NewPlainPrinter(writer)
	}

	if err := printer.PrintStatusLine(resp); err != nil {
		return err
	}
	if outputOptions.PrintResponseHeader {
		if err := printer.PrintHeader(resp.Header); err != nil {
			return err
		}
	}
	if outputOptions.PrintResponseBody {
		if err := printer.PrintBody(resp.Body, resp.Header.Get("Content-Type")); err != nil {
			return err
		}
	}

	return nil
}
