package app

import (
	"log/slog"
	"time"

	"github.com/soocke/campip-go/config"
	"github.com/soocke/campip-go/domain/capture"
	"github.com/soocke/campip-go/domain/device"
	"github.com/soocke/campip-go/domain/session"
	"github.com/soocke/campip-go/ui/model"
)

// Container assembles the domain services and models. The Tk views and
// presenters are wired by App.Run once the toolkit is up; everything
// here is safe to construct before the first Tk call.
type Container struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Directory  *device.MediaDirectory
	Watcher    *device.Watcher
	Authorizer *capture.ProbeAuthorizer
	Pipeline   *capture.CameraPipeline
	Manager    *session.Manager

	Status  *model.StatusModel
	Devices *model.DevicesModel
	Uptime  *model.UptimeModel
}

// BuildContainer constructs all non-UI components and wires the camera
// fault path back into the session manager.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, CfgPath: cfgPath, Logger: logger}

	c.Directory = device.NewMediaDirectory(logger)
	c.Authorizer = capture.NewProbeAuthorizer(logger)
	c.Pipeline = capture.NewCameraPipeline(logger, cfg.CaptureWidth, cfg.CaptureHeight)

	settle := time.Duration(cfg.SettleDelayMS) * time.Millisecond
	retry := time.Duration(cfg.RetryDelayMS) * time.Millisecond
	c.Manager = session.NewManager(logger, c.Authorizer, c.Directory, c.Pipeline, settle, retry)

	// A track that ends outside a deliberate detach is a runtime fault.
	c.Pipeline.SetFaultHandler(c.Manager.RuntimeError)

	hotplug := time.Duration(cfg.HotplugPollMS) * time.Millisecond
	c.Watcher = device.NewWatcher(c.Directory, c.Manager, logger, hotplug)

	c.Status = model.NewStatusModel()
	c.Devices = model.NewDevicesModel()
	c.Uptime = model.NewUptimeModel()
	return c
}
