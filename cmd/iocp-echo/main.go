// Command iocp-echo is a TCP echo server built on the iocp runtime: one
// completion port, one Accept loop, one Recv/Send loop per connection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/windiocp/iocp"
	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/logging"
	"github.com/windiocp/iocp/net"
)

func main() {
	var (
		port    = flag.Int("port", 9000, "TCP port to listen on")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	err := iocp.Run(func(rt *iocp.Runtime) error {
		local := addr.IPv4{IP: [4]byte{0, 0, 0, 0}, Port: uint16(*port)}
		listener, err := net.ListenTCP(rt.Port(), local)
		if err != nil {
			return iocp.WrapError("ListenTCP", err)
		}
		defer listener.Close()

		logger.Info("listening", "port", *port)
		fmt.Printf("iocp-echo listening on :%d\n", *port)

		for {
			stream, err := listener.Accept(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Error("accept failed", "error", err)
				continue
			}

			rt.SpawnLocal(func() {
				serve(ctx, rt, stream)
			})
		}
	})
	if err != nil {
		logger.Error("runtime exited with error", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, rt *iocp.Runtime, stream *net.TCPStream) {
	defer stream.Close()

	buffer := buf.NewByteBuffer(iocp.DefaultReadBufferSize)
	for {
		n, filled, err := net.Recv(ctx, stream, buffer)
		if err != nil {
			rt.Observer().ObserveComplete("Recv", 0, 0, false)
			return
		}
		if n == 0 {
			return
		}

		rt.Observer().ObserveComplete("Recv", uint64(n), 0, true)
		buffer = filled

		if _, _, err := net.Send(ctx, stream, buffer); err != nil {
			rt.Observer().ObserveComplete("Send", 0, 0, false)
			return
		}
		rt.Observer().ObserveComplete("Send", uint64(n), 0, true)

		buffer.SetInitializedLen(0)
	}
}
