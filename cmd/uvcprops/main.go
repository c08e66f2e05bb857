package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kevmo314/go-uvcprops"
	"github.com/kevmo314/go-uvcprops/internal/config"
	"github.com/kevmo314/go-uvcprops/internal/logging"
	"github.com/kevmo314/go-uvcprops/pkg/drivers/rigel"
	"github.com/kevmo314/go-uvcprops/pkg/property"
)

const usage = `usage: uvcprops [flags] <command>

commands:
  devices                list attached usb devices and whether they are supported
  list                   print every property with its value and range
  get <property>         print the current value
  range <property>       print the valid range
  set <property> <value> apply a value

properties: exposure, gain, gamma, hdr, leds
`

var errUsage = errors.New("invalid arguments")

func main() {
	path := flag.String("path", "", "path to the usb device")
	configPath := flag.String("config", "", "path to a YAML config file")
	tui := flag.Bool("tui", false, "browse and edit properties interactively")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *path != "" {
		cfg.Device.Path = *path
	}
	logger := logging.New(cfg.Logging)

	reg := property.NewRegistry()
	if err := rigel.Register(reg, rigel.WithLogger(logger)); err != nil {
		log.Fatalf("register drivers: %v", err)
	}

	if flag.Arg(0) == "devices" {
		devices, err := listAttached()
		if err != nil {
			log.Fatal(err)
		}
		printDevices(os.Stdout, reg, devices)
		return
	}
	if cfg.Device.Path == "" {
		flag.Usage()
		os.Exit(2)
	}

	fd, err := os.OpenFile(cfg.Device.Path, os.O_RDWR, 0)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.Device.Path, err)
	}
	defer fd.Close()

	dev, err := uvc.NewUVCDevice(fd.Fd())
	if err != nil {
		log.Fatalf("open uvc device: %v", err)
	}
	defer dev.Close()

	drv, err := reg.Open(dev.ID(), dev)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := drv.(*rigel.Session); ok && s.Health() == rigel.Degraded {
		logger.Warn("extension unit unavailable, vendor properties will fail", "error", s.Err())
	}

	applyPresets(drv, cfg.Presets, logger)

	if *tui {
		if err := runTUI(drv); err != nil {
			log.Fatalf("tui: %v", err)
		}
		return
	}
	if err := run(drv, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func applyPresets(drv property.Driver, presets []config.Preset, logger *slog.Logger) {
	for _, p := range presets {
		id, err := property.ParseID(p.Property)
		if err != nil {
			logger.Warn("skipping preset", "property", p.Property, "error", err)
			continue
		}
		if o := drv.Set(id, p.Value); o != property.Success {
			logger.Warn("preset not applied", "property", id, "value", p.Value, "outcome", o)
			continue
		}
		logger.Info("preset applied", "property", id, "value", p.Value)
	}
}

func run(drv property.Driver, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "list":
		if len(args) != 1 {
			return errUsage
		}
		for _, id := range property.IDs() {
			fmt.Fprintf(w, "%-9s %s  %s\n", id, formatResult(drv.Get(id)), formatRange(drv.Range(id)))
		}
		fmt.Fprintf(w, "frame fixup: %d\n", drv.FrameFixup())
		return nil
	case "get", "range":
		if len(args) != 2 {
			return errUsage
		}
		id, err := property.ParseID(args[1])
		if err != nil {
			return err
		}
		if args[0] == "get" {
			r := drv.Get(id)
			fmt.Fprintln(w, formatResult(r))
			return outcomeError(id, r.Outcome)
		}
		r := drv.Range(id)
		fmt.Fprintln(w, formatRange(r))
		if r.Outcome == property.NotHandled {
			return outcomeError(id, r.Outcome)
		}
		return nil
	case "set":
		if len(args) != 3 {
			return errUsage
		}
		id, err := property.ParseID(args[1])
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(args[2]), 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", args[2], err)
		}
		o := drv.Set(id, v)
		fmt.Fprintln(w, o)
		return outcomeError(id, o)
	}
	return errUsage
}

func outcomeError(id property.ID, o property.Outcome) error {
	if o == property.Success {
		return nil
	}
	return fmt.Errorf("%s: %s", id, o)
}

func formatResult(r property.Result) string {
	if r.Outcome != property.Success {
		return r.Outcome.String()
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// formatRange prints a range; properties without a range are reported as unsupported.
func formatRange(r property.Range) string {
	switch r.Outcome {
	case property.Success:
		return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
	case property.Failure:
		return "unsupported"
	}
	return r.Outcome.String()
}
