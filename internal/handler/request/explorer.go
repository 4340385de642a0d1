package request

// BlockURI binds /block/:hash and /api/block/:hash.
type BlockURI struct {
	Hash string `uri:"hash" binding:"required,hash256"`
}

// HeightURI binds /block-height/:height.
type HeightURI struct {
	Height int64 `uri:"height" binding:"min=0"`
}

// TxURI binds /tx/:txid and /api/tx/:txid.
type TxURI struct {
	Txid string `uri:"txid" binding:"required,hash256"`
}

// AddressURI binds /address/:address.
type AddressURI struct {
	Address string `uri:"address" binding:"required,alphanum,max=100"`
}
