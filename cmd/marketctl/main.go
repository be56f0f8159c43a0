// marketctl is a command-line client for the agent marketplace API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/solagora/agentmarket/internal/buildconfig"
	"github.com/solagora/agentmarket/internal/client"
	"github.com/solagora/agentmarket/internal/config"
	"github.com/solagora/agentmarket/internal/domain"
	"github.com/solagora/agentmarket/internal/present"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	_ = config.Load()
	c := client.New(config.MarketURL())
	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		agents, err := c.FetchAgents(ctx, 1, 100)
		exitOnError(err)
		for _, a := range agents {
			fmt.Printf("  %s  %-30s %s %s\n",
				a.ID, a.Name,
				present.FormatPrice(a.Pricing.Price),
				present.PricingLabel(a.Pricing.Type))
		}

	case "show":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: marketctl show <id>")
			os.Exit(1)
		}
		agent, err := c.FetchAgentByID(ctx, os.Args[2])
		exitOnError(err)
		printAgent(agent)

	case "register":
		register(ctx, c, os.Args[2:])

	case "hire":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: marketctl hire <id>")
			os.Exit(1)
		}
		agent, err := c.FetchAgentByID(ctx, os.Args[2])
		exitOnError(err)
		printJSON(domain.ToHireRequest(agent))

	case "version":
		fmt.Printf("marketctl %s (%s)\n", buildconfig.Version(), buildconfig.Commit())

	default:
		usage()
		os.Exit(1)
	}
}

func register(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "agent name")
	description := fs.String("description", "", "what the agent does")
	price := fs.String("price", "", "price per query in SOL")
	endpoint := fs.String("endpoint", "", "API documentation URL (optional)")
	caps := fs.String("caps", "", "comma-separated capability tags")
	_ = fs.Parse(args)

	draft := client.NewDraft()
	draft.Name = *name
	draft.Description = *description
	draft.Price = *price
	draft.Endpoint = *endpoint
	for _, tag := range strings.Split(*caps, ",") {
		draft.AddCapability(tag)
	}

	identity := domain.WalletIdentity{
		PublicKey:   config.WalletAddress(),
		IsConnected: config.WalletAddress() != "",
	}

	result, err := draft.Submit(ctx, c, identity)
	exitOnError(err)
	fmt.Printf("registered agent %s\n", result.AgentID)
}

func printAgent(a *domain.Agent) {
	fmt.Printf("%s (%s)\n", a.Name, a.ID)
	fmt.Printf("  %s\n", a.Description)
	fmt.Printf("  price:      %s %s\n", present.FormatPrice(a.Pricing.Price), present.PricingLabel(a.Pricing.Type))
	fmt.Printf("  rating:     %.1f (%d reviews)\n", a.Rating.Average, a.Rating.Count)
	fmt.Printf("  registered: %s\n", present.FormatRegistrationDate(a.CreatedAt))
	for _, tag := range a.Capabilities {
		fmt.Printf("  [%s] %s\n", present.CapabilityIcon(tag), tag)
	}
	if a.Endpoint != "" {
		fmt.Printf("  docs: %s\n", a.Endpoint)
	}
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`marketctl - agent marketplace CLI

Usage:
  marketctl list                      List the agent directory
  marketctl show <id>                 Show one agent
  marketctl register -name ... -description ... -price ... -caps a,b [-endpoint ...]
                                      Register a new agent (MARKET_WALLET must be set)
  marketctl hire <id>                 Print the hire request for an agent
  marketctl version                   Print version

Environment:
  MARKET_URL     API base URL (default http://localhost:8080)
  MARKET_WALLET  Connected wallet address`)
}
