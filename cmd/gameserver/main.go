// Command gameserver runs the Game service: the gRPC façade over an
// in-memory GameIndexer, backed by the upstream API service for card
// content and user lookups and by AMQP for outbound change notifications.
// Grounded on the teacher's cmd/pokersrv/main.go bring-up sequence
// (flags, LogBackend, net.Listen, grpc.NewServer, RegisterXxxServer,
// blocking Serve), generalized from a single poker table service to the
// game RPC façade plus its background eviction sweeper.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vctt94/bisonbotkit/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/blankcards/gameservice/pkg/apiclient"
	"github.com/blankcards/gameservice/pkg/game"
	"github.com/blankcards/gameservice/pkg/notify"
	"github.com/blankcards/gameservice/pkg/registry"
	"github.com/blankcards/gameservice/pkg/rpc/apirpc"
	"github.com/blankcards/gameservice/pkg/rpc/gamerpc"
	"github.com/blankcards/gameservice/pkg/server"
)

// DefaultPort is the Game service's default listen port (§6).
const DefaultPort = 50052

func main() {
	var (
		host       string
		port       int
		portFile   string
		debugLevel string
	)
	flag.StringVar(&host, "host", "127.0.0.1", "Host to listen on")
	flag.IntVar(&port, "port", DefaultPort, "Port to listen on")
	flag.StringVar(&portFile, "portfile", "", "If set, write the selected port to this file")
	flag.StringVar(&debugLevel, "debuglevel", "info", "Logging level: trace, debug, info, warn, error")
	flag.Parse()

	apiURI := os.Getenv("API_URI")
	if apiURI == "" {
		fmt.Fprintln(os.Stderr, "API_URI must be set")
		os.Exit(1)
	}
	amqpURI := os.Getenv("AMQP_URI")
	if amqpURI == "" {
		fmt.Fprintln(os.Stderr, "AMQP_URI must be set")
		os.Exit(1)
	}

	logBackend, err := logging.NewLogBackend(logging.LogConfig{DebugLevel: debugLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logging: %v\n", err)
		os.Exit(1)
	}
	log := logBackend.Logger("GAMESERVER")

	apiConn, err := grpc.NewClient(apiURI, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Errorf("failed to dial API_URI %s: %v", apiURI, err)
		os.Exit(1)
	}
	defer apiConn.Close()
	apiRPC := apirpc.NewCardUserServiceClient(apiConn)
	collaborator := apiclient.New(apiRPC)

	notifier, err := notify.Dial(amqpURI, logBackend.Logger("NOTIFY"))
	if err != nil {
		log.Errorf("failed to dial AMQP_URI %s: %v", amqpURI, err)
		os.Exit(1)
	}

	indexer := registry.NewGameIndexer()

	auditLog, _ := zap.NewProduction()
	defer auditLog.Sync()

	srv := server.NewServer(indexer, collaborator, collaborator, notifier, logBackend.Logger("GAME"), auditLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := registry.NewSweeper(indexer, time.Minute, game.IdleEvictionThreshold, logBackend.Logger("REGISTRY"))
	go sweeper.Run(ctx)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		log.Errorf("failed to listen: %v", err)
		os.Exit(1)
	}
	if portFile != "" {
		_, p, _ := net.SplitHostPort(lis.Addr().String())
		_ = os.WriteFile(portFile, []byte(p), 0600)
	}

	grpcSrv := grpc.NewServer()
	gamerpc.RegisterGameServiceServer(grpcSrv, srv)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		log.Infof("shutting down")
		cancel()
		grpcSrv.GracefulStop()
	}()

	log.Infof("game service listening on %s", lis.Addr().String())
	if err := grpcSrv.Serve(lis); err != nil {
		log.Errorf("grpc serve error: %v", err)
		os.Exit(1)
	}
}
