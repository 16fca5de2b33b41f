package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/derive"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/system"
	"github.com/iov-one/custody/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	openCost   int64 = 300
	settleCost int64 = 400
	cancelCost int64 = 200
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, sys system.Controller, tokens token.Controller) {
	bucket := NewBucket()
	r.Handle(&OpenMsg{}, OpenHandler{auth: auth, bucket: bucket, sys: sys, tokens: tokens})
	r.Handle(&SettleMsg{}, SettleHandler{auth: auth, bucket: bucket, sys: sys, tokens: tokens})
	r.Handle(&CancelMsg{}, CancelHandler{auth: auth, bucket: bucket, sys: sys, tokens: tokens})
}

// RegisterQuery will register the escrow bucket as "/escrows"
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// OpenHandler creates an escrow and moves the deposit into its vault.
type OpenHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	sys    system.Controller
	tokens token.Controller
}

var _ custody.Handler = OpenHandler{}

func (h OpenHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: openCost}, nil
}

func (h OpenHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, bump, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	signer, err := derive.NewSigner(RecordSeeds(msg.Maker, msg.Seed), bump, ProgramID)
	if err != nil {
		return nil, errors.Wrap(ErrAuthority, err.Error())
	}
	// The record address consents to its own allocation.
	if err := h.sys.CreateAccount(ctx, db, x.ChainAuth(h.auth, signer), msg.Maker, msg.Escrow, conf.RecordSpace, ProgramID); err != nil {
		return nil, errors.Wrap(err, "cannot allocate record")
	}
	rec := &Record{
		Metadata: &custody.Metadata{Schema: 1},
		Seed:     msg.Seed,
		Maker:    msg.Maker,
		MintA:    msg.MintA,
		MintB:    msg.MintB,
		Receive:  msg.Receive,
		Bump:     uint32(bump),
	}
	if err := h.bucket.Put(db, msg.Escrow, rec); err != nil {
		return nil, errors.Wrap(err, "cannot store record")
	}

	if _, err := h.tokens.CreateHoldingIdempotent(ctx, db, h.auth, msg.Maker, msg.Escrow, msg.MintA); err != nil {
		return nil, errors.Wrap(err, "cannot create vault")
	}
	mintA, err := h.tokens.Mint(db, msg.MintA)
	if err != nil {
		return nil, errors.Wrap(err, "mint a")
	}
	if err := h.tokens.TransferChecked(ctx, db, h.auth, msg.MakerHoldingA, msg.Vault, msg.MintA, msg.Amount, mintA.Decimals); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}

	custody.GetLogger(ctx).Info("Escrow opened",
		"escrow", msg.Escrow, "maker", msg.Maker, "amount", msg.Amount, "receive", msg.Receive)
	return &custody.DeliverResult{
		Data: msg.Escrow,
		Tags: tags(msg.Escrow, msg.Maker),
	}, nil
}

// validate returns the message and the bump of the record address.
func (h OpenHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*OpenMsg, uint8, error) {
	var msg *OpenMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Maker) {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}

	addr, bump, err := RecordAddress(msg.Maker, msg.Seed)
	if err != nil {
		return nil, 0, errors.Wrap(ErrAuthority, err.Error())
	}
	if m := mismatch("Escrow", addr, msg.Escrow); m != nil {
		return nil, 0, m
	}
	vault, err := token.AssociatedAddress(msg.Escrow, msg.MintA)
	if err != nil {
		return nil, 0, errors.Wrap(ErrAuthority, err.Error())
	}
	if m := mismatch("Vault", vault, msg.Vault); m != nil {
		return nil, 0, m
	}

	if _, err := h.tokens.Mint(db, msg.MintA); err != nil {
		return nil, 0, errors.Wrap(err, "mint a")
	}
	if _, err := h.tokens.Mint(db, msg.MintB); err != nil {
		return nil, 0, errors.Wrap(err, "mint b")
	}
	if err := holdingOf(h.tokens, db, "MakerHoldingA", msg.MakerHoldingA, msg.Maker, msg.MintA); err != nil {
		return nil, 0, err
	}

	switch err := h.bucket.Has(db, msg.Escrow); {
	case err == nil:
		return nil, 0, errors.Wrap(errors.ErrDuplicate, "escrow exists")
	case !errors.ErrNotFound.Is(err):
		return nil, 0, err
	}
	return msg, bump, nil
}

// SettleHandler exchanges the vault content for the requested payment.
type SettleHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	sys    system.Controller
	tokens token.Controller
}

var _ custody.Handler = SettleHandler{}

func (h SettleHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: settleCost}, nil
}

func (h SettleHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	st, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg, rec := st.msg, st.rec

	if _, err := h.tokens.CreateHoldingIdempotent(ctx, db, h.auth, msg.Taker, rec.Maker, rec.MintB); err != nil {
		return nil, errors.Wrap(err, "maker holding b")
	}
	if _, err := h.tokens.CreateHoldingIdempotent(ctx, db, h.auth, msg.Taker, msg.Taker, rec.MintA); err != nil {
		return nil, errors.Wrap(err, "taker holding a")
	}

	mintB, err := h.tokens.Mint(db, rec.MintB)
	if err != nil {
		return nil, errors.Wrap(err, "mint b")
	}
	if err := h.tokens.TransferChecked(ctx, db, h.auth, msg.TakerHoldingB, msg.MakerHoldingB, rec.MintB, rec.Receive, mintB.Decimals); err != nil {
		return nil, errors.Wrap(err, "cannot pay maker")
	}
	if err := st.release(ctx, db, h.bucket, h.sys, h.tokens, msg.TakerHoldingA); err != nil {
		return nil, err
	}

	custody.GetLogger(ctx).Info("Escrow settled",
		"escrow", msg.Escrow, "maker", rec.Maker, "taker", msg.Taker, "amount", st.vault.Amount, "receive", rec.Receive)
	return &custody.DeliverResult{Tags: tags(msg.Escrow, rec.Maker)}, nil
}

type settlement struct {
	msg *SettleMsg
	claim
}

func (h SettleHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*settlement, error) {
	var msg *SettleMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Taker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	b := Binding{
		Maker:  msg.Maker,
		MintA:  msg.MintA,
		MintB:  msg.MintB,
		Escrow: msg.Escrow,
		Vault:  msg.Vault,
	}
	rel, err := bind(db, h.bucket, h.tokens, msg.Escrow, msg.Vault, b)
	if err != nil {
		return nil, err
	}
	rec := rel.rec

	if err := holdingOf(h.tokens, db, "TakerHoldingB", msg.TakerHoldingB, msg.Taker, rec.MintB); err != nil {
		return nil, err
	}
	if err := associated("TakerHoldingA", msg.TakerHoldingA, msg.Taker, rec.MintA); err != nil {
		return nil, err
	}
	if err := associated("MakerHoldingB", msg.MakerHoldingB, rec.Maker, rec.MintB); err != nil {
		return nil, err
	}
	return &settlement{msg: msg, claim: *rel}, nil
}

// CancelHandler returns the vault content to the maker.
type CancelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	sys    system.Controller
	tokens token.Controller
}

var _ custody.Handler = CancelHandler{}

func (h CancelHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: cancelCost}, nil
}

func (h CancelHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, rel, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	rec := rel.rec
	if _, err := h.tokens.CreateHoldingIdempotent(ctx, db, h.auth, rec.Maker, rec.Maker, rec.MintA); err != nil {
		return nil, errors.Wrap(err, "maker holding a")
	}
	if err := rel.release(ctx, db, h.bucket, h.sys, h.tokens, msg.MakerHoldingA); err != nil {
		return nil, err
	}

	custody.GetLogger(ctx).Info("Escrow cancelled",
		"escrow", msg.Escrow, "maker", rec.Maker, "amount", rel.vault.Amount)
	return &custody.DeliverResult{Tags: tags(msg.Escrow, rec.Maker)}, nil
}

func (h CancelHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CancelMsg, *claim, error) {
	var msg *CancelMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Maker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}
	b := Binding{
		Maker:  msg.Maker,
		MintA:  msg.MintA,
		Escrow: msg.Escrow,
		Vault:  msg.Vault,
	}
	rel, err := bind(db, h.bucket, h.tokens, msg.Escrow, msg.Vault, b)
	if err != nil {
		return nil, nil, err
	}
	if err := associated("MakerHoldingA", msg.MakerHoldingA, rel.rec.Maker, rel.rec.MintA); err != nil {
		return nil, nil, err
	}
	return msg, rel, nil
}

// claim is an escrow whose presented accounts were checked and whose vault
// authority was proven.
type claim struct {
	addr      custody.Address
	rec       *Record
	vaultAddr custody.Address
	vault     *token.Holding
	signer    *derive.Signer
}

// bind loads the record and the vault, checks the presented accounts against
// them and acquires the vault authority.
func bind(db custody.KVStore, bucket orm.ModelBucket, tokens token.Controller, addr, vaultAddr custody.Address, b Binding) (*claim, error) {
	var rec Record
	if err := bucket.One(db, addr, &rec); err != nil {
		return nil, errors.Wrap(err, "escrow")
	}
	vault, err := tokens.Holding(db, vaultAddr)
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if m := CheckBinding(&rec, addr, b, vault); m != nil {
		return nil, m
	}
	signer, err := AuthorizeVault(&rec, addr, vault)
	if err != nil {
		return nil, err
	}
	return &claim{addr: addr, rec: &rec, vaultAddr: vaultAddr, vault: vault, signer: signer}, nil
}

// release empties the vault into dst and closes both the vault and the
// record, returning their deposits to the maker.
func (c claim) release(ctx custody.Context, db custody.KVStore, bucket orm.ModelBucket, sys system.Controller, tokens token.Controller, dst custody.Address) error {
	mintA, err := tokens.Mint(db, c.rec.MintA)
	if err != nil {
		return errors.Wrap(err, "mint a")
	}
	if err := tokens.TransferChecked(ctx, db, c.signer, c.vaultAddr, dst, c.rec.MintA, c.vault.Amount, mintA.Decimals); err != nil {
		return errors.Wrap(err, "cannot withdraw vault")
	}
	if err := tokens.CloseHolding(ctx, db, c.signer, c.vaultAddr, c.rec.Maker); err != nil {
		return errors.Wrap(err, "cannot close vault")
	}
	if err := bucket.Delete(db, c.addr); err != nil {
		return errors.Wrap(err, "cannot delete record")
	}
	if err := sys.CloseAccount(ctx, db, c.signer, c.addr, c.rec.Maker); err != nil {
		return errors.Wrap(err, "cannot release record")
	}
	return nil
}

// holdingOf ensures that addr is an existing holding of mint owned by owner.
func holdingOf(tokens token.Controller, db custody.ReadOnlyKVStore, field string, addr, owner, mint custody.Address) error {
	h, err := tokens.Holding(db, addr)
	if err != nil {
		return errors.Field(field, err, "holding")
	}
	if m := mismatch(field+".Owner", owner, h.Owner); m != nil {
		return m
	}
	if m := mismatch(field+".Mint", mint, h.Mint); m != nil {
		return m
	}
	return nil
}

// associated ensures that addr is the associated holding address of owner
// and mint.
func associated(field string, addr, owner, mint custody.Address) error {
	want, err := token.AssociatedAddress(owner, mint)
	if err != nil {
		return errors.Field(field, err, "cannot derive")
	}
	if m := mismatch(field, want, addr); m != nil {
		return m
	}
	return nil
}

func tags(escrow, maker custody.Address) []common.KVPair {
	return []common.KVPair{
		{Key: []byte("escrow"), Value: []byte(escrow.String())},
		{Key: []byte("maker"), Value: []byte(maker.String())},
	}
}
