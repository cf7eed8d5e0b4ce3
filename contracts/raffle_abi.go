package contracts

// RaffleABI describes the deployed raffle contract surface: lifecycle
// mutators, read methods, lifecycle events and the declared revert errors.
const RaffleABI = `[
	{
		"type": "function",
		"name": "createRaffle",
		"inputs": [
			{"name": "totalTickets", "type": "uint32"},
			{"name": "ticketToken", "type": "address"},
			{"name": "ticketTokenQuantity", "type": "uint96"},
			{"name": "distribution", "type": "tuple[]", "components": [
				{"name": "fundPercentage", "type": "uint96"},
				{"name": "ticketQuantity", "type": "uint96"}
			]},
			{"name": "duration", "type": "uint32"},
			{"name": "minTicketsRequired", "type": "uint32"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "buyTickets",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "quantity", "type": "uint32"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "finalizeRaffle",
		"inputs": [
			{"name": "raffleId", "type": "uint256"}
		],
		"outputs": [],
		"stateMutability": "payable"
	},
	{
		"type": "function",
		"name": "selectWinners",
		"inputs": [
			{"name": "raffleId", "type": "uint256"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "claimPrize",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "ticketId", "type": "uint256"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "refundTicket",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "ticketId", "type": "uint256"}
		],
		"outputs": [],
		"stateMutability": "nonpayable"
	},
	{
		"type": "function",
		"name": "getRaffleInfo",
		"inputs": [
			{"name": "raffleId", "type": "uint256"}
		],
		"outputs": [
			{"name": "ticketToken", "type": "address"},
			{"name": "ticketTokenQuantity", "type": "uint96"},
			{"name": "endBlock", "type": "uint32"},
			{"name": "minTicketsRequired", "type": "uint32"},
			{"name": "totalSold", "type": "uint32"},
			{"name": "availableTickets", "type": "uint32"},
			{"name": "ticketsRefunded", "type": "uint32"},
			{"name": "sequenceNumber", "type": "uint64"},
			{"name": "isActive", "type": "bool"},
			{"name": "isFinalized", "type": "bool"},
			{"name": "isNull", "type": "bool"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getUserTickets",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "user", "type": "address"}
		],
		"outputs": [
			{"name": "", "type": "uint256[]"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getWinningTicketsForPool",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "poolIndex", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "uint256[]"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getTicketInfo",
		"inputs": [
			{"name": "raffleId", "type": "uint256"},
			{"name": "ticketId", "type": "uint256"}
		],
		"outputs": [
			{"name": "owner", "type": "address"},
			{"name": "purchasePrice", "type": "uint96"},
			{"name": "prizeShare", "type": "uint256"},
			{"name": "isRefunded", "type": "bool"},
			{"name": "isClaimed", "type": "bool"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getSequenceFees",
		"inputs": [],
		"outputs": [
			{"name": "", "type": "uint256"}
		],
		"stateMutability": "view"
	},
	{
		"type": "function",
		"name": "getTicketPrice",
		"inputs": [
			{"name": "raffleId", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "uint256"}
		],
		"stateMutability": "view"
	},
	{
		"type": "event",
		"name": "RaffleCreated",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "creator", "type": "address", "indexed": false},
			{"name": "totalTickets", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "TicketsPurchased",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "buyer", "type": "address", "indexed": true},
			{"name": "quantity", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "SequenceNumberRequested",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "sequenceNumber", "type": "uint64", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "WinnersSelected",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "validTickets", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "PrizeClaimed",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "winner", "type": "address", "indexed": true},
			{"name": "ticketId", "type": "uint256", "indexed": false},
			{"name": "amount", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	},
	{
		"type": "event",
		"name": "TicketRefunded",
		"inputs": [
			{"name": "raffleId", "type": "uint256", "indexed": true},
			{"name": "user", "type": "address", "indexed": true},
			{"name": "ticketId", "type": "uint256", "indexed": false}
		],
		"anonymous": false
	},
	{"type": "event", "name": "RaffleDeclaredNull", "inputs": [
		{"name": "raffleId", "type": "uint256", "indexed": true}
	], "anonymous": false},
	{"type": "error", "name": "AlreadyClaimed", "inputs": []},
	{"type": "error", "name": "InsufficientTickets", "inputs": []},
	{"type": "error", "name": "InvalidDistribution", "inputs": []},
	{"type": "error", "name": "InvalidTicketId", "inputs": []},
	{"type": "error", "name": "OwnableInvalidOwner", "inputs": [
		{"name": "owner", "type": "address"}
	]},
	{"type": "error", "name": "OwnableUnauthorizedAccount", "inputs": [
		{"name": "account", "type": "address"}
	]},
	{"type": "error", "name": "RaffleAlreadyFinalized", "inputs": []},
	{"type": "error", "name": "RaffleExpired", "inputs": []},
	{"type": "error", "name": "RaffleIsNull", "inputs": []},
	{"type": "error", "name": "RaffleNotActive", "inputs": []},
	{"type": "error", "name": "RaffleNotEnded", "inputs": []},
	{"type": "error", "name": "RaffleNotFinalized", "inputs": []},
	{"type": "error", "name": "ReentrancyGuardReentrantCall", "inputs": []},
	{"type": "error", "name": "TicketAlreadyRefunded", "inputs": []},
	{"type": "error", "name": "TicketNotOwned", "inputs": []},
	{"type": "error", "name": "ZeroAddress", "inputs": []}
]`
