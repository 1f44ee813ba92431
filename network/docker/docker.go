/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package docker

import (
	"strings"

	docker "github.com/fsouza/go-dockerclient"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("fabricx.docker")

// Client is a thin helper over the docker API used for preflight checks and
// for releasing resources that a compose teardown can leave behind.
type Client struct {
	client *docker.Client
}

// NewClientFromEnv builds a Client from the standard DOCKER_* environment.
func NewClientFromEnv() (*Client, error) {
	dockerClient, err := docker.NewClientFromEnv()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create docker client")
	}
	return &Client{client: dockerClient}, nil
}

// Ping reports whether the docker daemon is reachable.
func (c *Client) Ping() error {
	if err := c.client.Ping(); err != nil {
		return errors.Wrapf(err, "docker daemon not reachable")
	}
	return nil
}

// CheckImagesExist returns an error naming the first required container
// image that is not available locally.
func (c *Client) CheckImagesExist(requiredImages ...string) error {
	for _, imageName := range requiredImages {
		images, err := c.client.ListImages(docker.ListImagesOptions{
			Filters: map[string][]string{"reference": {imageName}},
		})
		if err != nil {
			return errors.Wrapf(err, "failed listing images")
		}
		if len(images) == 0 {
			return errors.Errorf("missing required image: %s", imageName)
		}
	}
	return nil
}

// Cleanup releases every container, volume, and network whose name matches
// the predicate. It is used after a compose teardown to drop leftovers
// belonging to a network's project.
func (c *Client) Cleanup(matchName func(name string) bool) error {
	containers, err := c.client.ListContainers(docker.ListContainersOptions{All: true})
	if err != nil {
		return errors.Wrapf(err, "failed listing containers")
	}
	for _, container := range containers {
		for _, name := range container.Names {
			if matchName(strings.TrimPrefix(name, "/")) {
				logger.Infof("removing container [%s]", name)
				if err := c.client.RemoveContainer(docker.RemoveContainerOptions{ID: container.ID, Force: true}); err != nil {
					return errors.Wrapf(err, "failed removing container [%s]", container.ID)
				}
				break
			}
		}
	}

	volumes, err := c.client.ListVolumes(docker.ListVolumesOptions{})
	if err != nil {
		return errors.Wrapf(err, "failed listing volumes")
	}
	for _, volume := range volumes {
		if matchName(volume.Name) {
			logger.Infof("removing volume [%s]", volume.Name)
			if err := c.client.RemoveVolumeWithOptions(docker.RemoveVolumeOptions{Name: volume.Name}); err != nil {
				return errors.Wrapf(err, "failed removing volume [%s]", volume.Name)
			}
		}
	}

	networks, err := c.client.ListNetworks()
	if err != nil {
		return errors.Wrapf(err, "failed listing networks")
	}
	for _, nw := range networks {
		if matchName(nw.Name) {
			logger.Infof("removing network [%s]", nw.Name)
			if err := c.client.RemoveNetwork(nw.ID); err != nil {
				return errors.Wrapf(err, "failed removing network [%s]", nw.Name)
			}
		}
	}
	return nil
}
