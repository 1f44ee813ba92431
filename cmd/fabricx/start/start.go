/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package start

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tedsuo/ifrit"

	"github.com/temmyjay001/fabricx-sub000/network"
	"github.com/temmyjay001/fabricx-sub000/network/docker"
	"github.com/temmyjay001/fabricx-sub000/pkg/runner"
	"github.com/temmyjay001/fabricx-sub000/server"
)

var logger = flogging.MustGetLogger("fabricx.start")

// Cmd returns the cobra command that runs the network service.
func Cmd() *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Starts the fabricx network service.",
		Long:  `Starts the gRPC service that bootstraps, drives, and tears down local test networks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("trailing args detected")
			}
			cmd.SilenceUsage = true
			return serve()
		},
	}

	flags := startCmd.Flags()
	flags.String("listen", "0.0.0.0:9999", "listen address for the gRPC endpoint")
	flags.String("root-dir", "", "directory holding per-network artifacts (defaults to a temp dir)")
	flags.String("docker-bin", "docker", "docker binary used to drive containers")
	flags.String("tools-image", network.DefaultToolsImage, "image carrying cryptogen, configtxgen, and the peer CLI")
	flags.String("peer-image", network.DefaultPeerImage, "peer container image")
	flags.String("orderer-image", network.DefaultOrdererImage, "orderer container image")
	flags.String("ca-image", network.DefaultCAImage, "certificate authority container image")
	flags.String("couchdb-image", network.DefaultCouchDBImage, "state database container image")
	flags.Duration("start-timeout", network.DefaultStartTimeout, "how long to wait for all containers to come up")
	flags.String("logging-spec", "info", "logging specification, e.g. fabricx=debug:info")
	for _, name := range []string{
		"listen", "root-dir", "docker-bin", "tools-image", "peer-image",
		"orderer-image", "ca-image", "couchdb-image", "start-timeout", "logging-spec",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	return startCmd
}

func serve() error {
	flogging.ActivateSpec(viper.GetString("logging-spec"))

	executor := runner.NewExecExecutor()
	dockerClient, err := docker.NewClientFromEnv()
	if err != nil {
		// the exec path still works without the API client, preflight
		// image checks are just skipped
		logger.Warnf("docker API client unavailable: %s", err)
		dockerClient = nil
	}

	controller := network.New(executor, dockerClient, network.Options{
		DockerBinary: viper.GetString("docker-bin"),
		ToolsImage:   viper.GetString("tools-image"),
		PeerImage:    viper.GetString("peer-image"),
		OrdererImage: viper.GetString("orderer-image"),
		CAImage:      viper.GetString("ca-image"),
		CouchDBImage: viper.GetString("couchdb-image"),
		RootDir:      viper.GetString("root-dir"),
		StartTimeout: viper.GetDuration("start-timeout"),
	})

	grpcServer := server.New(viper.GetString("listen"), controller)
	process := ifrit.Invoke(grpcServer)

	select {
	case <-process.Ready():
	case err := <-process.Wait():
		return err
	}
	logger.Infof("fabricx network service started")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		process.Signal(sig)
	}()

	return <-process.Wait()
}
