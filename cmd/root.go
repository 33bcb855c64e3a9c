package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/bokol-ooch/temporizadores/config"
	"github.com/bokol-ooch/temporizadores/pkg/cmd/cli"
	"github.com/bokol-ooch/temporizadores/pkg/events/natsio"
	"github.com/bokol-ooch/temporizadores/pkg/timestamp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var c = new(config.Config)
var cmdHandler = cli.NewHandler(c)

var (
	Version   = "dev-master"
	BuildTime = "undefined"
	GitHash   = "undefined"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "temporizadores",
	Short: "Shelf session log (registros de temporizadores)",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// Execute runs the root command and is called by main.main()
func Execute() {
	c.BuildTime = BuildTime
	c.BuildVersion = Version
	c.BuildHash = GitHash

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.temporizadores.yml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigType("yaml")
		viper.SetConfigName(".temporizadores") // name of config file (without extension)
		viper.AddConfigPath("$HOME")           // adding home directory as first search path
		viper.AddConfigPath(".")
	}
	viper.AutomaticEnv() // read in environment variables that match

	// Fetch settings
	viper.BindEnv("PORT")
	viper.SetDefault("PORT", 3000)

	viper.BindEnv("HOST")
	viper.SetDefault("HOST", "")

	viper.BindEnv("DATABASE_URL")
	viper.SetDefault("DATABASE_URL", "registros.sqlite")

	viper.BindEnv("STATIC_DIR")
	viper.SetDefault("STATIC_DIR", "public")

	viper.BindEnv("DISPLAY_TIMEZONE")
	viper.SetDefault("DISPLAY_TIMEZONE", timestamp.DefaultDisplayTimezone)

	viper.BindEnv("NATS_URL")
	viper.SetDefault("NATS_URL", "")

	viper.BindEnv("NATS_SUBJECT")
	viper.SetDefault("NATS_SUBJECT", natsio.DefaultSubject)

	viper.BindEnv("LOG_LEVEL")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.BindEnv("LOG_FILE")
	viper.SetDefault("LOG_FILE", "")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Printf(`Config file not read because "%s"`, err)
			fmt.Println("")
		}
	}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatal(fmt.Sprintf("Could not read config because %s.", err))
	}
}
