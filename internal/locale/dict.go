package locale

// Explorer is the explorer's dictionary. Keys are flat.
type Explorer struct {
	SiteName          string `yaml:"siteName"`
	SiteTagline       string `yaml:"siteTagline"`
	Home              string `yaml:"home"`
	Blocks            string `yaml:"blocks"`
	Transactions      string `yaml:"transactions"`
	Network           string `yaml:"network"`
	Search            string `yaml:"search"`
	SearchPlaceholder string `yaml:"searchPlaceholder"`

	NetworkStatus string `yaml:"networkStatus"`
	BlockHeight   string `yaml:"blockHeight"`
	Difficulty    string `yaml:"difficulty"`
	HashRate      string `yaml:"hashRate"`
	Connections   string `yaml:"connections"`
	Mempool       string `yaml:"mempool"`
	MempoolSize   string `yaml:"mempoolSize"`
	MempoolTxs    string `yaml:"mempoolTxs"`

	LatestBlocks string `yaml:"latestBlocks"`
	Height       string `yaml:"height"`
	Hash         string `yaml:"hash"`
	Time         string `yaml:"time"`
	TxCount      string `yaml:"txCount"`
	Size         string `yaml:"size"`
	Miner        string `yaml:"miner"`

	BlockDetails        string `yaml:"blockDetails"`
	Block               string `yaml:"block"`
	Confirmations       string `yaml:"confirmations"`
	Timestamp           string `yaml:"timestamp"`
	MerkleRoot          string `yaml:"merkleRoot"`
	Nonce               string `yaml:"nonce"`
	Bits                string `yaml:"bits"`
	Version             string `yaml:"version"`
	PrevBlock           string `yaml:"prevBlock"`
	NextBlock           string `yaml:"nextBlock"`
	TransactionsInBlock string `yaml:"transactionsInBlock"`

	TransactionDetails string `yaml:"transactionDetails"`
	Transaction        string `yaml:"transaction"`
	Txid               string `yaml:"txid"`
	Status             string `yaml:"status"`
	Confirmed          string `yaml:"confirmed"`
	Pending            string `yaml:"pending"`
	InBlock            string `yaml:"inBlock"`
	Inputs             string `yaml:"inputs"`
	Outputs            string `yaml:"outputs"`
	Coinbase           string `yaml:"coinbase"`
	Fee                string `yaml:"fee"`
	Value              string `yaml:"value"`
	Address            string `yaml:"address"`

	AddressDetails string `yaml:"addressDetails"`
	AddressInfo    string `yaml:"addressInfo"`
	AddressNote    string `yaml:"addressNote"`
	AddressType    string `yaml:"addressType"`
	AddressNetwork string `yaml:"addressNetwork"`
	AddressInvalid string `yaml:"addressInvalid"`

	ViewAll  string `yaml:"viewAll"`
	Loading  string `yaml:"loading"`
	NotFound string `yaml:"notFound"`
	Error    string `yaml:"error"`
	Bytes    string `yaml:"bytes"`
	Seconds  string `yaml:"seconds"`
	Ago      string `yaml:"ago"`

	JustNow    string `yaml:"justNow"`
	MinutesAgo string `yaml:"minutesAgo"`
	HoursAgo   string `yaml:"hoursAgo"`
	DaysAgo    string `yaml:"daysAgo"`

	PoweredBy   string `yaml:"poweredBy"`
	OpenSource  string `yaml:"openSource"`
	FreeForever string `yaml:"freeForever"`

	Language   string `yaml:"language"`
	Arabic     string `yaml:"arabic"`
	English    string `yaml:"english"`
	SwitchLang string `yaml:"switchLang"`
}

// Website is the marketing site's dictionary, grouped by page section.
type Website struct {
	SiteName       string `yaml:"siteName"`
	Tagline        string `yaml:"tagline"`
	GenesisQuote   string `yaml:"genesisQuote"`
	GenesisCaption string `yaml:"genesisCaption"`

	Nav struct {
		Home      string `yaml:"home"`
		Download  string `yaml:"download"`
		Explorer  string `yaml:"explorer"`
		Community string `yaml:"community"`
		Docs      string `yaml:"docs"`
		GitHub    string `yaml:"github"`
		Language  string `yaml:"language"`
	} `yaml:"nav"`

	Hero struct {
		Title          string `yaml:"title"`
		Subtitle       string `yaml:"subtitle"`
		Description    string `yaml:"description"`
		LaunchDate     string `yaml:"launchDate"`
		GetStarted     string `yaml:"getStarted"`
		ViewExplorer   string `yaml:"viewExplorer"`
		DownloadWallet string `yaml:"downloadWallet"`
	} `yaml:"hero"`

	Stats struct {
		Title    string `yaml:"title"`
		Blocks   string `yaml:"blocks"`
		Hashrate string `yaml:"hashrate"`
		Peers    string `yaml:"peers"`
		Supply   string `yaml:"supply"`
	} `yaml:"stats"`

	Features struct {
		Title    string    `yaml:"title"`
		Subtitle string    `yaml:"subtitle"`
		Items    []Feature `yaml:"items"`
	} `yaml:"features"`

	Specs struct {
		Title string `yaml:"title"`
		Items []Spec `yaml:"items"`
	} `yaml:"specs"`

	QuickStart struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
		Steps    []Step `yaml:"steps"`
	} `yaml:"quickStart"`

	Footer struct {
		Copyright string `yaml:"copyright"`
		FreeSyria string `yaml:"freesyria"`
		Links     struct {
			Title    string `yaml:"title"`
			GitHub   string `yaml:"github"`
			Explorer string `yaml:"explorer"`
			Docs     string `yaml:"docs"`
		} `yaml:"links"`
		Resources struct {
			Title       string `yaml:"title"`
			Whitepaper  string `yaml:"whitepaper"`
			WalletGuide string `yaml:"walletGuide"`
			NodeGuide   string `yaml:"nodeGuide"`
		} `yaml:"resources"`
		Community struct {
			Title    string `yaml:"title"`
			Twitter  string `yaml:"twitter"`
			Telegram string `yaml:"telegram"`
			Discord  string `yaml:"discord"`
		} `yaml:"community"`
	} `yaml:"footer"`

	Download struct {
		Title             string `yaml:"title"`
		Subtitle          string `yaml:"subtitle"`
		BuildFromSource   string `yaml:"buildFromSource"`
		BuildInstructions string `yaml:"buildInstructions"`
		Platforms         struct {
			Windows string `yaml:"windows"`
			MacOS   string `yaml:"macos"`
			Linux   string `yaml:"linux"`
			Source  string `yaml:"source"`
		} `yaml:"platforms"`
		ComingSoon string `yaml:"comingSoon"`
	} `yaml:"download"`

	Docs struct {
		Title    string  `yaml:"title"`
		Subtitle string  `yaml:"subtitle"`
		Guides   []Guide `yaml:"guides"`
	} `yaml:"docs"`

	Community struct {
		Title    string    `yaml:"title"`
		Subtitle string    `yaml:"subtitle"`
		Channels []Channel `yaml:"channels"`
	} `yaml:"community"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Spec struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Step struct {
	Title string `yaml:"title"`
	Code  string `yaml:"code"`
}

type Guide struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

type Channel struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Link        string `yaml:"link"`
}
