// Package mock provides test doubles for the integration suite.
package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles an in-process miniredis server with a connected client.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a miniredis server and connects a client to it.
func NewRedis() (*Redis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	return &Redis{
		Server: server,
		Client: client,
	}, nil
}

// Close shuts down the client and the server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
