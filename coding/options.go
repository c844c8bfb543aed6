package coding

// UserInfoKey names an entry of UserInfo.
type UserInfoKey string

// UserInfo is caller context passed unchanged to every Writer and Reader of
// one encode or decode.
type UserInfo map[UserInfoKey]any

func (u UserInfo) Get(k UserInfoKey) (any, bool) {
	v, ok := u[k]
	return v, ok
}

// EncoderOption configures an Encoder.
type EncoderOption interface {
	applyEncoder(*Encoder)
}

// DecoderOption configures a Decoder.
type DecoderOption interface {
	applyDecoder(*Decoder)
}

// Option configures either side.
type Option interface {
	EncoderOption
	DecoderOption
}

type keyStrategyOption struct{ s KeyStrategy }

func (o keyStrategyOption) applyEncoder(e *Encoder) { e.keys = o.s }
func (o keyStrategyOption) applyDecoder(d *Decoder) { d.keys = o.s }

// WithKeyStrategy sets the key strategy.
func WithKeyStrategy(s KeyStrategy) Option {
	return keyStrategyOption{s: s}
}

type userInfoOption struct {
	k UserInfoKey
	v any
}

func (o userInfoOption) applyEncoder(e *Encoder) { e.info = withInfo(e.info, o.k, o.v) }
func (o userInfoOption) applyDecoder(d *Decoder) { d.info = withInfo(d.info, o.k, o.v) }

// WithUserInfo adds one UserInfo entry.
func WithUserInfo(k UserInfoKey, v any) Option {
	return userInfoOption{k: k, v: v}
}

func withInfo(u UserInfo, k UserInfoKey, v any) UserInfo {
	if u == nil {
		u = UserInfo{}
	}
	u[k] = v
	return u
}
