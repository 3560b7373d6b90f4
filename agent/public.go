package agent

import (
	"context"
	"fmt"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation, able to
// consult the others through function calls.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his portfolios: what he holds, what it is worth,
			and what is moving in the market. Check the portfolio contents first so you know his tickers.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is the market expert: it can search the web for recent news
// about assets, exchanges and markets.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		well aware of crypto and stock markets, exchanges and funds,
		and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in crypto and stock markets. You can search and find out about
			anything related to exchanges, companies, tokens and funds. You leverage Google
			Search to ground your assertions in solid truth, and you know how to relate the
			latest news to the user's request.
			`}}},
		},
	}
}

// NewBookkeeper is the portfolio expert: it reads the user's portfolios and
// market data through function calls.
func NewBookkeeper(store *folio.Store, md *folio.MarketData) *Expert {
	lib := bookkeeperLibrary(store, md)
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It is in charge of reading the user's portfolios:
		which portfolios exist, what assets they hold, their valuation and their spot prices.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a bookkeeper in charge of the user's portfolios.
			You know how to use the Tools to extract relevant information about the user's
			holdings and their value. Other experts might ask you questions with approximate
			wording, pardon it and figure out what they meant.

			Use the available tools to get
			  - the list of portfolios
			  - a full report of one portfolio
			  - the spot price of a ticker
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// bookkeeperLibrary exposes the store and market data as callable functions.
func bookkeeperLibrary(store *folio.Store, md *folio.MarketData) []Function {
	listPortfolios := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ListPortfolios",
			Description: "List all portfolios with their name, currency, asset count and ID.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of all portfolios.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "ListPortfolios", renderer.ListMarkdown(store.LoadAllPortfolios()))
		},
	}

	portfolioReport := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PortfolioReport",
			Description: "Render the full valuation report of one portfolio, by name or ID.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"portfolio": {
						Type:        genai.TypeString,
						Description: "The name or ID of the portfolio to report on.",
					},
				},
				Required: []string{"portfolio"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the portfolio's holdings and valuation.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ref, ok := args["portfolio"].(string)
			if !ok {
				return errorResponse(id, "PortfolioReport", fmt.Errorf("argument 'portfolio' is not a string but %T", args["portfolio"]))
			}
			p, err := store.FindPortfolio(ref)
			if err != nil {
				return errorResponse(id, "PortfolioReport", err)
			}
			return outputResponse(id, "PortfolioReport", renderer.PortfolioMarkdown(p, md))
		},
	}

	spotPrice := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "SpotPrice",
			Description: "Get the current USD spot price of a crypto or stock ticker.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The ticker, e.g. BTC or AAPL.",
					},
					"type": {
						Type:        genai.TypeString,
						Description: "CRYPTO or STOCK. Defaults to CRYPTO.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The spot price in USD, or 0 when unknown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, ok := args["ticker"].(string)
			if !ok {
				return errorResponse(id, "SpotPrice", fmt.Errorf("argument 'ticker' is not a string but %T", args["ticker"]))
			}
			typ := folio.Crypto
			if s, ok := args["type"].(string); ok {
				if parsed, err := folio.ParseAssetType(s); err == nil {
					typ = parsed
				}
			}
			price := md.Price(ticker, typ, "USD")
			return outputResponse(id, "SpotPrice", fmt.Sprintf("%s: %.2f USD", ticker, price))
		},
	}

	return []Function{listPortfolios, portfolioReport, spotPrice}
}
