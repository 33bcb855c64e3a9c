package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bokol-ooch/temporizadores/pkg/events/natsio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// watchCmd prints every saved record announced on NATS
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print saved records as they are announced on NATS",
	Run: func(cmd *cobra.Command, args []string) {
		if !c.NATSEnabled() {
			fmt.Println("NATS_URL is not configured")
			os.Exit(2)
		}

		nc, err := natsio.New(c.NATSServerURL, c.NATSSubject)
		if err != nil {
			log.Fatal(err)
		}
		defer nc.Close()

		// Subscribe
		if _, err := nc.Subscribe(func(data []byte) {
			fmt.Printf("subject: %s, record: %s\n", nc.Subject(), string(data))
		}); err != nil {
			log.Fatal(err)
		}

		// Wait for interrupt signal
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt)
		<-quitCh
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
