package pkg

import "math/bits"

// EncryptMoney obscures a cash amount the way the classic game stores
// its on-disk cash field
func EncryptMoney(value int32) int32 {
	return int32(bits.RotateLeft32(uint32(value)^0xF4EC9621, 13))
}

// DecryptMoney is the inverse of EncryptMoney
func DecryptMoney(value int32) int32 {
	return int32(bits.RotateLeft32(uint32(value), -13) ^ 0xF4EC9621)
}

// LoanHash derives the loan integrity value stored in the file tail
// from the starting cash and loan limits
func LoanHash(initialCash, bankLoan, maxBankLoan int32) uint32 {
	value := uint32(0x70093A)
	value -= uint32(initialCash)
	value = bits.RotateLeft32(value, -5)
	value -= uint32(bankLoan)
	value = bits.RotateLeft32(value, -7)
	value += uint32(maxBankLoan)
	value = bits.RotateLeft32(value, -3)
	return value
}
