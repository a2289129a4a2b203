package scaffold

// tradingBotPy is the seeded trading bot module.
const tradingBotPy = `import krakenex
from decimal import Decimal
import json
import os
from dotenv import load_dotenv
import logging
from datetime import datetime
from tenacity import retry, stop_after_attempt, wait_exponential

load_dotenv()

class KrakenTradingBot:
    def __init__(self):
        self.kraken = krakenex.API(
            key=os.getenv('KRAKEN_API_KEY'),
            secret=os.getenv('KRAKEN_API_SECRET')
        )
        self.load_config()
        self.setup_logging()

    def load_config(self):
        with open('config.json', 'r') as f:
            self.config = json.load(f)

    def setup_logging(self):
        logging.basicConfig(
            level=logging.INFO,
            format='%(asctime)s - %(name)s - %(levelname)s - %(message)s',
            handlers=[
                logging.FileHandler('trading.log'),
                logging.StreamHandler()
            ]
        )
        self.logger = logging.getLogger('KrakenBot')

    @retry(stop=stop_after_attempt(3), wait=wait_exponential(multiplier=1, min=4, max=10))
    def get_balance(self):
        """Get account balance with retry logic."""
        try:
            return self.kraken.query_private('Balance')
        except Exception as e:
            self.logger.error(f'Error getting balance: {str(e)}')
            raise

    @retry(stop=stop_after_attempt(3), wait=wait_exponential(multiplier=1, min=4, max=10))
    def place_limit_buy_order(self, pair: str, price: float, volume: float):
        """Place a limit buy order with retry logic."""
        try:
            order = {
                'pair': pair,
                'type': 'buy',
                'ordertype': 'limit',
                'price': str(price),
                'volume': str(volume)
            }
            result = self.kraken.query_private('AddOrder', order)
            self.logger.info(f'Placed buy order: {result}')
            return result
        except Exception as e:
            self.logger.error(f'Error placing buy order: {str(e)}')
            raise

    # Add more trading methods here
`

// mcpServerPy is the seeded API server module.
const mcpServerPy = `from fastapi import FastAPI, HTTPException, Depends
from pydantic import BaseModel
import uvicorn
from typing import List, Optional
import sys
import os
from datetime import datetime
import logging
from tenacity import retry, stop_after_attempt, wait_exponential

# Add parent directory to path to import trading_bot
sys.path.append(os.path.dirname(os.path.dirname(os.path.abspath(__file__))))
from kraken_bot.trading_bot import KrakenTradingBot

app = FastAPI()
bot = KrakenTradingBot()

# Setup logging
logging.basicConfig(
    level=logging.INFO,
    format='%(asctime)s - %(name)s - %(levelname)s - %(message)s',
    handlers=[
        logging.FileHandler('mcp_server.log'),
        logging.StreamHandler()
    ]
)
logger = logging.getLogger('MCPServer')

class OrderRequest(BaseModel):
    pair: str
    price: float
    volume: float

class CancelRequest(BaseModel):
    order_id: str

@app.get('/health')
async def health_check():
    return {'status': 'healthy', 'timestamp': datetime.utcnow().isoformat()}

@app.get('/balance')
@retry(stop=stop_after_attempt(3), wait=wait_exponential(multiplier=1, min=4, max=10))
async def get_balance():
    try:
        balance = bot.get_balance()
        if balance is None:
            raise HTTPException(status_code=500, detail='Failed to get balance')
        return balance
    except Exception as e:
        logger.error(f'Error in balance endpoint: {str(e)}')
        raise HTTPException(status_code=500, detail=str(e))

@app.post('/order/buy')
@retry(stop=stop_after_attempt(3), wait=wait_exponential(multiplier=1, min=4, max=10))
async def place_buy_order(order: OrderRequest):
    try:
        result = bot.place_limit_buy_order(order.pair, order.price, order.volume)
        if result is None:
            raise HTTPException(status_code=500, detail='Failed to place buy order')
        return result
    except Exception as e:
        logger.error(f'Error in buy order endpoint: {str(e)}')
        raise HTTPException(status_code=500, detail=str(e))

# Add more endpoints here

def start_server():
    uvicorn.run(app, host='127.0.0.1', port=int(os.getenv('MCP_PORT', 8080)))

if __name__ == '__main__':
    start_server()
`

// mcpConfigJSON is the seeded server manifest.
const mcpConfigJSON = `{
  "name": "kraken-trader",
  "version": "1.0.0",
  "description": "MCP server for Kraken trading bot",
  "endpoints": {
    "health": {
      "method": "GET",
      "path": "/health",
      "description": "Check server health"
    },
    "balance": {
      "method": "GET",
      "path": "/balance",
      "description": "Get account balance"
    },
    "buy": {
      "method": "POST",
      "path": "/order/buy",
      "description": "Place a limit buy order"
    }
  },
  "rate_limiting": {
    "requests_per_minute": 60,
    "retry_delay": 5
  },
  "security": {
    "require_authentication": true,
    "log_level": "INFO"
  }
}`
