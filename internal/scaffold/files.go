// Package scaffold holds the built-in project skeleton: the ordered set of
// files reposeed writes when no manifest overrides it. The contents are
// inert data pushed to the target repository, never executed here.
package scaffold

import "github.com/kilupskalvis/reposeed/internal/config"

// RequirementsTxt pins the Python dependencies of the seeded project.
const RequirementsTxt = `krakenex==2.1.0
ta-lib==0.4.24
python-dotenv==0.19.2
websockets==10.3
fastapi==0.68.1
uvicorn==0.15.0
pydantic==1.8.2
requests==2.26.0
tenacity==8.2.2`

// EnvExample is the environment template committed alongside the code.
const EnvExample = `KRAKEN_API_KEY=your_api_key_here
KRAKEN_API_SECRET=your_api_secret_here
MCP_PORT=8080
DEBUG_MODE=false
GITHUB_TOKEN=your_github_token_here`

// ConfigJSON is the bot's runtime configuration.
const ConfigJSON = `{
    "trading_pairs": ["XBT/USD", "ETH/USD"],
    "default_order_size": 0.01,
    "max_open_orders": 5,
    "price_precision": 2,
    "quantity_precision": 8,
    "rate_limit": {
        "requests_per_minute": 60,
        "retry_delay": 5
    }
}`

// Files returns the ordered file set for the built-in skeleton. Order
// matters: the batch driver writes these one at a time, top to bottom.
func Files() []config.File {
	return []config.File{
		{Path: "requirements.txt", Content: RequirementsTxt},
		{Path: ".env.example", Content: EnvExample},
		{Path: "config.json", Content: ConfigJSON},
		{Path: "kraken_bot/__init__.py", Content: ""},
		{Path: "kraken_bot/trading_bot.py", Content: tradingBotPy},
		{Path: "mcp_server/__init__.py", Content: ""},
		{Path: "mcp_server/server.py", Content: mcpServerPy},
		{Path: "mcp_server/config.json", Content: mcpConfigJSON},
	}
}
