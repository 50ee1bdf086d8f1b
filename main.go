package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/staggertx/api"
	"github.com/matt-g-everett/staggertx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
	Logger   *log.Logger
}

func newApp(logger *log.Logger) *app {
	a := new(app)
	a.Logger = logger
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Logger.Info("connected", "broker", a.Config.Mqtt.URL)
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		a.Logger.Fatal("mqtt connect failed", "err", token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		a.Logger.Fatal("config open failed", "path", configPath, "err", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&a.Config); err != nil {
		a.Logger.Fatal("config parse failed", "path", configPath, "err", err)
	}
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	apiAddr := flag.String("api", ":3000", "Address for the state API.")
	verbose := flag.Bool("verbose", false, "Enable debug logging.")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	// Read the config
	a := newApp(logger)
	a.readConfig(*configPath)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("staggertx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	streamer, err := stream.NewStreamer(a.Config, a.Client, logger)
	if err != nil {
		logger.Fatal("scene configuration invalid", "err", err)
	}
	a.Streamer = streamer

	go api.NewApi(*apiAddr, streamer, logger).Serve()

	a.run()
}
